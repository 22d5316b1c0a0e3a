package shell

import (
	"fmt"
	"io"
)

// 菜单与固定文案。界面语言与业务方一致（西语）。

func printWelcome(w io.Writer) {
	fmt.Fprintln(w, "===== Bienvenido a DriveQuest Rentals =====")
	fmt.Fprintln(w, "===========================================")
}

// PrintFarewell 退出文案。目录落盘完成后由入口打印。
func PrintFarewell(w io.Writer) {
	fmt.Fprintln(w, "Gracias por usar DriveQuest Rentals. ¡Hasta pronto!")
}

func printMainMenu(w io.Writer) {
	fmt.Fprintln(w, "============= Menú principal ==============")
	fmt.Fprintln(w, "1. Agregar Vehículo")
	fmt.Fprintln(w, "2. Arrendar Vehículo")
	fmt.Fprintln(w, "3. Listar Vehículos")
	fmt.Fprintln(w, "4. Mostrar boletas emitidas")
	fmt.Fprintln(w, "5. Mostrar arriendos")
	fmt.Fprintln(w, "6. Salir del sistema")
	fmt.Fprintln(w, "===========================================")
}

func printAddMenu(w io.Writer) {
	fmt.Fprintln(w, "============= Menú - Agregar vehículo ==============")
	fmt.Fprintln(w, "Seleccione el tipo de vehículo a agregar:")
	fmt.Fprintln(w, "1. Vehículo de pasajeros")
	fmt.Fprintln(w, "2. Vehículo de carga")
	fmt.Fprintln(w, "3. Volver al menú principal")
	fmt.Fprintln(w, "=====================================================")
}

func printRentMenu(w io.Writer) {
	fmt.Fprintln(w, "============= Menú - Agregar arriendo ==============")
	fmt.Fprintln(w, "Seleccione el tipo de vehículo a arrendar:")
	fmt.Fprintln(w, "1. Vehículo de pasajeros")
	fmt.Fprintln(w, "2. Vehículo de carga")
	fmt.Fprintln(w, "3. Volver al menú principal")
	fmt.Fprintln(w, "=====================================================")
}

func printListMenu(w io.Writer) {
	fmt.Fprintln(w, "============= Menú - Listar vehículos ==============")
	fmt.Fprintln(w, "Seleccione el tipo de vehículo a listar:")
	fmt.Fprintln(w, "1. Vehículo de pasajeros")
	fmt.Fprintln(w, "2. Vehículo de carga")
	fmt.Fprintln(w, "3. Listar todos los vehículos")
	fmt.Fprintln(w, "4. Volver al menú principal")
	fmt.Fprintln(w, "=====================================================")
}

func printStaysMenu(w io.Writer) {
	fmt.Fprintln(w, "============= Menú - Mostrar arriendos ==============")
	fmt.Fprintln(w, "Seleccione el tipo de arriendo a mostrar:")
	fmt.Fprintln(w, "1. Mostrar todos los arriendos (>= 7 días de arriendo)")
	fmt.Fprintln(w, "2. Mostrar todos los arriendos (<= 6 días de arriendo)")
	fmt.Fprintln(w, "3. Volver al menú principal")
	fmt.Fprintln(w, "=====================================================")
}

func printRowHeader(w io.Writer, withKind bool) {
	if withKind {
		fmt.Fprintf(w, "| %-10s | %-10s | %-10s | %-10s | %-4s | %-7s | %-9s | %-7s |\n",
			"Tipo", "Patente", "Marca", "Modelo", "Año", "Puertas", "Capacidad", "Valor")
		return
	}
	fmt.Fprintf(w, "| %-10s | %-10s | %-10s | %-4s | %-7s | %-9s | %-7s |\n",
		"Patente", "Marca", "Modelo", "Año", "Puertas", "Capacidad", "Valor")
}
