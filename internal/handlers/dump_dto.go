package handlers

import (
	"strconv"

	"github.com/gorilla/schema"

	"github.com/vancomm/buscaminas/internal/mines"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

type DumpQuery struct {
	Rows   int      `schema:"rows,required"`
	Cols   int      `schema:"cols,required"`
	Mines  int      `schema:"mines,required"`
	Seed   *uint64  `schema:"seed"`
	View   string   `schema:"view"`
	Format string   `schema:"format"`
	Open   []string `schema:"open"`
}

func ParseDumpQuery(src map[string][]string) (DumpQuery, error) {
	var dto DumpQuery
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type DumpDTO struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Mines int      `json:"mines"`
	Seed  string   `json:"seed"`
	View  string   `json:"view"`
	Lines []string `json:"lines"`
}

func NewDumpDTO(b *mines.Board, seed uint64, view mines.View, d *mines.Dump) *DumpDTO {
	lines := make([]string, d.Rows())
	for row := range d.Rows() {
		lines[row] = d.Row(row)
	}
	return &DumpDTO{
		Rows:  b.Rows(),
		Cols:  b.Cols(),
		Mines: b.Mines(),
		Seed:  strconv.FormatUint(seed, 10),
		View:  string(view),
		Lines: lines,
	}
}
