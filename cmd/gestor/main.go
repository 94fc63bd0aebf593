// gestor sirve el BFF del gestor de tareas y, para desarrollo local, un
// backend REST en memoria.
//
// Uso:
//
//	gestor serve        # BFF en HTTP_HOST:HTTP_PORT contra API_URL
//	gestor devbackend   # backend en memoria en DEVBACKEND_HOST:DEVBACKEND_PORT
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
