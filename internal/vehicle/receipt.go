package vehicle

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// 费率常量。与业务约定一致：IVA 19%，载客折扣 12%，载货折扣 7%。
const taxRate = 0.19

var discountRate = map[Kind]float64{
	KindPassenger: 0.12,
	KindCargo:     0.07,
}

// Receipt 一次租赁的boleta（结算单）。金额均为整数货币单位。
type Receipt struct {
	ID       string `json:"id"`
	Kind     Kind   `json:"tipo"`
	Plate    string `json:"patente"`
	Days     int    `json:"dias_arriendo"`
	Subtotal int    `json:"subtotal"`
	Discount int    `json:"descuento"`
	Tax      int    `json:"iva"`
	Total    int    `json:"total"`
}

// ComputeReceipt 计算当前租赁的结算单。纯计算，不修改车辆状态。
//
// 每一步都做截断取整（int 转换直接丢弃小数），分步截断、不向后传递，
// 这是刻意保留的结算口径，不是精度问题：
//
//	subtotal = días * valor diario
//	descuento = trunc(subtotal * 折扣率)
//	iva       = trunc((subtotal - descuento) * 0.19)
//	total     = subtotal - descuento + iva
//
// 未租出的车辆没有结算单，返回 ErrNotRented。
func (v *Vehicle) ComputeReceipt() (*Receipt, error) {
	if v == nil {
		return nil, fmt.Errorf("vehicle is nil")
	}
	if v.RentalDays == 0 {
		return nil, ErrNotRented
	}
	subtotal := v.RentalDays * v.DailyRate
	discount := int(float64(subtotal) * discountRate[v.Kind])
	tax := int(float64(subtotal-discount) * taxRate)
	total := subtotal - discount + tax

	return &Receipt{
		ID:       uuid.NewString(),
		Kind:     v.Kind,
		Plate:    v.Plate,
		Days:     v.RentalDays,
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    total,
	}, nil
}

// Boleta 结算单的打印视图。
func (r *Receipt) Boleta() string {
	kind := "Vehículo de pasajeros"
	if r.Kind == KindCargo {
		kind = "Vehículo de carga"
	}
	var b strings.Builder
	b.WriteString("===== Boleta Electrónica - DriveQuest Rentals =====\n")
	fmt.Fprintf(&b, "Tipo de Vehículo: %s\n", kind)
	fmt.Fprintf(&b, "Patente: %s\n", r.Plate)
	fmt.Fprintf(&b, "Días de Arriendo: %d\n", r.Days)
	b.WriteString("===================================================\n")
	fmt.Fprintf(&b, "Subtotal     :  $%d\n", r.Subtotal)
	fmt.Fprintf(&b, "Descuento    : -$%d\n", r.Discount)
	fmt.Fprintf(&b, "IVA (19%%)    :  $%d\n", r.Tax)
	fmt.Fprintf(&b, "Total a Pagar:  $%d\n", r.Total)
	b.WriteString("===================================================")
	return b.String()
}
