package vehicle

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind 车辆类型枚举。枚举值即 CSV 持久化文件中的 TIPO 字段取值。
type Kind string

const (
	KindPassenger Kind = "PASAJEROS" // 载客车辆
	KindCargo     Kind = "CARGA"     // 载货车辆
)

// ParseKind 解析 TIPO 字段（大小写不敏感）。
func ParseKind(s string) (Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(KindPassenger):
		return KindPassenger, nil
	case string(KindCargo):
		return KindCargo, nil
	default:
		return "", fmt.Errorf("tipo de vehículo desconocido: %s", s)
	}
}

// 租赁相关错误。由交互层直接展示给用户，因此文案使用业务方语言。
var (
	ErrAlreadyRented = errors.New("el vehículo ya está arrendado")
	ErrNotRented     = errors.New("el vehículo no está arrendado")
)

// ValidationError 字段校验失败。构造车辆或发起租赁时在边界处拒绝非法值，
// 非法值永远不会进入目录。
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Vehicle 车辆实体。两种类型共享同一字段集，Capacity 的含义由 Kind 决定
// （载客容量 / 载货容量）。Plate 创建后不可变；RentalDays 只能由一次成功的
// 租赁从 0 变为正数。
type Vehicle struct {
	Kind       Kind
	Plate      string
	Make       string
	Model      string
	RentalDays int
	DailyRate  int
	Doors      int
	Year       int
	Capacity   int
}

// New 带校验的构造函数。任何字段越界都返回 *ValidationError，不产生半成品实体。
func New(kind Kind, plate, brand, model string, dailyRate, doors, year, capacity int) (*Vehicle, error) {
	if kind != KindPassenger && kind != KindCargo {
		return nil, &ValidationError{Field: "tipo", Reason: "tipo de vehículo desconocido"}
	}
	plate = strings.TrimSpace(plate)
	brand = strings.TrimSpace(brand)
	model = strings.TrimSpace(model)
	if plate == "" {
		return nil, &ValidationError{Field: "patente", Reason: "la patente no puede estar vacía"}
	}
	if brand == "" {
		return nil, &ValidationError{Field: "marca", Reason: "la marca no puede estar vacía"}
	}
	if model == "" {
		return nil, &ValidationError{Field: "modelo", Reason: "el modelo no puede estar vacío"}
	}
	if dailyRate <= 0 {
		return nil, &ValidationError{Field: "valor diario", Reason: "el valor diario debe ser mayor a cero"}
	}
	if doors <= 0 {
		return nil, &ValidationError{Field: "puertas", Reason: "el número de puertas debe ser mayor a cero"}
	}
	if year < 1900 || year > time.Now().Year() {
		return nil, &ValidationError{Field: "año", Reason: "el año debe estar entre 1900 y el actual"}
	}
	if capacity <= 0 {
		if kind == KindPassenger {
			return nil, &ValidationError{Field: "capacidad", Reason: "la capacidad de pasajeros debe ser mayor a cero"}
		}
		return nil, &ValidationError{Field: "capacidad", Reason: "la capacidad de carga debe ser mayor a cero"}
	}
	return &Vehicle{
		Kind:      kind,
		Plate:     plate,
		Make:      brand,
		Model:     model,
		DailyRate: dailyRate,
		Doors:     doors,
		Year:      year,
		Capacity:  capacity,
	}, nil
}

// Rent 发起租赁：Available -> Rented 的唯一入口。
// 已租出返回 ErrAlreadyRented；天数非正返回 *ValidationError。
// 成功后 RentalDays 被置为 days 并返回本次租赁的 boleta。
func (v *Vehicle) Rent(days int) (*Receipt, error) {
	if v == nil {
		return nil, fmt.Errorf("vehicle is nil")
	}
	if !CanTransition(v.Status(), StatusRented) {
		return nil, ErrAlreadyRented
	}
	if days <= 0 {
		return nil, &ValidationError{Field: "días", Reason: "los días deben ser mayores a cero"}
	}
	v.RentalDays = days
	return v.ComputeReceipt()
}

// Label 类型的展示文案。
func (k Kind) Label() string {
	if k == KindCargo {
		return "Vehículo de carga"
	}
	return "Vehículo de pasajeros"
}

// KindLabel 类型的展示文案。
func (v *Vehicle) KindLabel() string {
	return v.Kind.Label()
}

func (v *Vehicle) capacityLabel() string {
	if v.Kind == KindCargo {
		return "Capacidad de carga"
	}
	return "Capacidad de pasajeros"
}

// Detail 车辆明细视图（多行文本）。
func (v *Vehicle) Detail() string {
	var b strings.Builder
	b.WriteString("====== Detalles del Vehículo ======\n")
	fmt.Fprintf(&b, "Tipo: %s\n", v.KindLabel())
	b.WriteString("===================================\n")
	fmt.Fprintf(&b, "Patente: %s\n", v.Plate)
	fmt.Fprintf(&b, "Marca: %s\n", v.Make)
	fmt.Fprintf(&b, "Modelo: %s\n", v.Model)
	fmt.Fprintf(&b, "Año: %d\n", v.Year)
	fmt.Fprintf(&b, "Puertas: %d\n", v.Doors)
	fmt.Fprintf(&b, "%s: %d\n", v.capacityLabel(), v.Capacity)
	fmt.Fprintf(&b, "Días de Arriendo: %d\n", v.RentalDays)
	fmt.Fprintf(&b, "Valor Diario: $%d\n", v.DailyRate)
	b.WriteString("===================================")
	return b.String()
}

// Row 列表视图的一行。withKind 控制是否带类型列（列出全部车辆时使用）。
func (v *Vehicle) Row(withKind bool) string {
	if withKind {
		kind := "Pasajeros"
		if v.Kind == KindCargo {
			kind = "Carga"
		}
		return fmt.Sprintf("| %-10s | %-10s | %-10s | %-10s | %-4d | %-7d | %-9d | %-7s |",
			kind, v.Plate, v.Make, v.Model, v.Year, v.Doors, v.Capacity, "$"+fmt.Sprint(v.DailyRate))
	}
	return fmt.Sprintf("| %-10s | %-10s | %-10s | %-4d | %-7d | %-9d | %-7s |",
		v.Plate, v.Make, v.Model, v.Year, v.Doors, v.Capacity, "$"+fmt.Sprint(v.DailyRate))
}
