// gestorctl herramienta de operación: migraciones, reporte por consola o PDF y datos de demostración.
package main

func main() {
	Execute()
}
