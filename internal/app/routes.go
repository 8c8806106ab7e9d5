package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/buscaminas/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	dump := handlers.NewDumpHandler(a.log, createRand(), handlers.DefaultMaxCells)

	base := a.cfg.BasePath
	a.router.HandleFunc("GET "+base+"/status", dump.Status)
	a.router.HandleFunc("GET "+base+"/dump", dump.Dump)
}
