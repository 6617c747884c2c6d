// Command api es el backend de la clínica: servidor HTTP y tareas de mantenimiento.
//
// @title Pet Clinic API
// @version 1.0
// @description Turnos, historia clínica, notificaciones e inventario de la clínica veterinaria.
// @BasePath /
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
