package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DriveQuest/DriveQuest/internal/catalog"
	"github.com/DriveQuest/DriveQuest/internal/common/logger"
	"github.com/DriveQuest/DriveQuest/internal/rental"
	"github.com/DriveQuest/DriveQuest/internal/vehicle"
)

// Shell 交互式控制台。只负责菜单、输入采集与结果渲染，
// 业务规则全部委托给目录与租赁服务。任何输入错误都回到上级菜单
// 或重新提示，绝不让进程崩溃。
type Shell struct {
	sc          *bufio.Scanner
	out         io.Writer
	store       *catalog.Store
	rentals     *rental.Service
	receiptPath string
	log         logger.Logger
}

func New(in io.Reader, out io.Writer, store *catalog.Store, rentals *rental.Service, receiptPath string, log logger.Logger) *Shell {
	return &Shell{
		sc:          bufio.NewScanner(in),
		out:         out,
		store:       store,
		rentals:     rentals,
		receiptPath: receiptPath,
		log:         log,
	}
}

// Run 主菜单循环。选项 6 或输入流关闭时返回。
func (s *Shell) Run(ctx context.Context) error {
	if s == nil || s.store == nil || s.rentals == nil {
		return fmt.Errorf("shell not initialized")
	}
	printWelcome(s.out)
	for {
		printMainMenu(s.out)
		line, err := s.readLine("Seleccione una opción: ")
		if err != nil {
			// 输入流关闭等同退出，让上层正常落盘
			return nil
		}
		option, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Error: Debe ingresar un número válido.")
			continue
		}
		switch option {
		case 1:
			s.addVehicle()
		case 2:
			s.rentVehicle(ctx)
		case 3:
			s.listVehicles()
		case 4:
			s.showReceipts(ctx)
		case 5:
			s.showFilteredStays()
		case 6:
			return nil
		default:
			fmt.Fprintln(s.out, "Opción no válida.")
		}
	}
}

// addVehicle 选项 1：按类型采集数据并注册车辆。
func (s *Shell) addVehicle() {
	printAddMenu(s.out)
	option, err := s.readLine("Seleccione tipo: ")
	if err != nil {
		return
	}
	var kind vehicle.Kind
	switch option {
	case "1":
		kind = vehicle.KindPassenger
	case "2":
		kind = vehicle.KindCargo
	case "3":
		fmt.Fprintln(s.out, "Volviendo al menú principal...")
		return
	default:
		fmt.Fprintln(s.out, "Opción de tipo de vehículo no válida.")
		return
	}

	plate, err := s.readLine("Patente: ")
	if err != nil {
		return
	}
	brand, err := s.readLine("Marca: ")
	if err != nil {
		return
	}
	model, err := s.readLine("Modelo: ")
	if err != nil {
		return
	}
	rate, ok := s.readInt("Valor diario: ")
	if !ok {
		return
	}
	doors, ok := s.readInt("Puertas: ")
	if !ok {
		return
	}
	year, ok := s.readInt("Año: ")
	if !ok {
		return
	}
	capPrompt := "Capacidad pasajeros: "
	if kind == vehicle.KindCargo {
		capPrompt = "Capacidad carga: "
	}
	capacity, ok := s.readInt(capPrompt)
	if !ok {
		return
	}

	v, err := vehicle.New(kind, plate, brand, model, rate, doors, year, capacity)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if err := s.store.Insert(v); err != nil {
		fmt.Fprintln(s.out, "No se pudo agregar el vehículo. ¿La patente ya existe?")
		return
	}
	fmt.Fprintf(s.out, "%s agregado correctamente.\n", v.KindLabel())
}

// rentVehicle 选项 2：列出可租车辆，按车牌发起租赁并打印结算单。
func (s *Shell) rentVehicle(ctx context.Context) {
	printRentMenu(s.out)
	option, err := s.readLine("Seleccione tipo: ")
	if err != nil {
		return
	}
	var kind vehicle.Kind
	switch option {
	case "1":
		kind = vehicle.KindPassenger
	case "2":
		kind = vehicle.KindCargo
	case "3":
		fmt.Fprintln(s.out, "Volviendo al menú principal...")
		return
	default:
		fmt.Fprintln(s.out, "Opción de arriendo no válida.")
		return
	}

	plural := "Vehículos de pasajeros"
	if kind == vehicle.KindCargo {
		plural = "Vehículos de carga"
	}
	fmt.Fprintf(s.out, "%s disponibles para arriendo:\n", plural)
	for _, v := range s.store.ListByKind(kind) {
		if v.Status() == vehicle.StatusAvailable {
			fmt.Fprintln(s.out, v.Detail())
		}
	}

	plate, err := s.readLine("Ingrese la patente del vehículo a arrendar: ")
	if err != nil {
		return
	}
	v, err := s.store.FindByPlate(plate)
	if err != nil || v.Kind != kind {
		fmt.Fprintf(s.out, "No se encontró un %s con esa patente.\n", strings.ToLower(kind.Label()))
		return
	}

	days, ok := s.readInt("Ingrese días de arriendo: ")
	if !ok {
		return
	}
	receipt, err := s.rentals.Rent(ctx, plate, days)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		fmt.Fprintln(s.out, "No se pudo arrendar el vehículo. Valida la patente e intenta de nuevo.")
		return
	}
	fmt.Fprintln(s.out, receipt.Boleta())
}

// listVehicles 选项 3：按范围列出车辆（表格视图）。
func (s *Shell) listVehicles() {
	printListMenu(s.out)
	option, err := s.readLine("Seleccione tipo: ")
	if err != nil {
		return
	}
	switch option {
	case "1":
		fmt.Fprintln(s.out, "Listando vehículos de pasajeros:")
		s.renderTable(s.store.ListByKind(vehicle.KindPassenger), false)
	case "2":
		fmt.Fprintln(s.out, "Listando vehículos de carga:")
		s.renderTable(s.store.ListByKind(vehicle.KindCargo), false)
	case "3":
		fmt.Fprintln(s.out, "Listando todos los vehículos:")
		s.renderTable(s.store.ListAll(), true)
	case "4":
		fmt.Fprintln(s.out, "Volviendo al menú principal...")
	default:
		fmt.Fprintln(s.out, "Opción de listado no válida.")
	}
}

func (s *Shell) renderTable(vehicles []*vehicle.Vehicle, withKind bool) {
	printRowHeader(s.out, withKind)
	for _, v := range vehicles {
		fmt.Fprintln(s.out, v.Row(withKind))
	}
}

// showReceipts 选项 4：打印全部已租出车辆的结算单，可选导出 JSON。
func (s *Shell) showReceipts(ctx context.Context) {
	receipts := s.rentals.Receipts(ctx)
	if len(receipts) == 0 {
		fmt.Fprintln(s.out, "No hay boletas emitidas.")
		return
	}
	for _, r := range receipts {
		fmt.Fprintln(s.out, r.Boleta())
	}
	if s.receiptPath == "" {
		return
	}
	answer, err := s.readLine("¿Exportar boletas a JSON? (s/n): ")
	if err != nil {
		return
	}
	if strings.EqualFold(answer, "s") {
		n, err := s.rentals.ExportReceipts(ctx, s.receiptPath)
		if err != nil {
			s.log.Errorf("no se pudo exportar boletas: %v", err)
			fmt.Fprintln(s.out, "No se pudo exportar las boletas.")
			return
		}
		fmt.Fprintf(s.out, "%d boletas exportadas a %s\n", n, s.receiptPath)
	}
}

// showFilteredStays 选项 5：按长短租过滤并展示明细与数量。
func (s *Shell) showFilteredStays() {
	printStaysMenu(s.out)
	option, err := s.readLine("Seleccione tipo: ")
	if err != nil {
		return
	}
	switch option {
	case "1":
		list := s.store.FilterLongStay()
		for _, v := range list {
			fmt.Fprintln(s.out, v.Detail())
		}
		fmt.Fprintf(s.out, "Total arriendos largos: %d\n", len(list))
	case "2":
		list := s.store.FilterShortStay()
		for _, v := range list {
			fmt.Fprintln(s.out, v.Detail())
		}
		fmt.Fprintf(s.out, "Total arriendos cortos: %d\n", len(list))
	case "3":
		fmt.Fprintln(s.out, "Volviendo al menú principal...")
	default:
		fmt.Fprintln(s.out, "Opción de arriendo no válida.")
	}
}

// readLine 带提示读取一行（去除首尾空白）。输入流关闭返回 io.EOF。
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.sc.Text()), nil
}

// readInt 带提示读取一个整数。非数字输入就地报错并放弃当前操作。
func (s *Shell) readInt(prompt string) (int, bool) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintln(s.out, "Error: Debe ingresar un valor numérico válido.")
		return 0, false
	}
	return n, true
}
