package handlers

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/buscaminas/internal/mines"
)

// DefaultMaxCells caps rows*cols per request.
const DefaultMaxCells = 100 * 100

var ErrBoardTooLarge = errors.New("board too large")

// DumpHandler renders one-off boards for tooling that consumes the text
// dumps. Nothing is kept between requests.
type DumpHandler struct {
	log      *logrus.Logger
	maxCells int

	mu  sync.Mutex // guards rnd
	rnd *rand.Rand
}

func NewDumpHandler(log *logrus.Logger, rnd *rand.Rand, maxCells int) *DumpHandler {
	if maxCells <= 0 {
		maxCells = DefaultMaxCells
	}
	return &DumpHandler{
		log:      log,
		maxCells: maxCells,
		rnd:      rnd,
	}
}

func (h *DumpHandler) nextSeed() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.rnd.Uint64()
}

func (h *DumpHandler) Status(w http.ResponseWriter, r *http.Request) {
	SendJSONOrLog(w, h.log, map[string]string{"status": "ok"})
}

func (h *DumpHandler) Dump(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseDumpQuery(r.URL.Query())
	if err != nil {
		SendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	view := mines.ViewCover
	if dto.View != "" {
		if view, err = mines.ParseView(dto.View); err != nil {
			SendErrorOrLog(w, h.log, http.StatusBadRequest, err)
			return
		}
	}

	format := dto.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatJSON {
		SendErrorOrLog(w, h.log, http.StatusBadRequest,
			fmt.Errorf("unknown format %q (want text or json)", dto.Format))
		return
	}

	// rows and cols are bounded first so the product cannot overflow
	if dto.Rows > h.maxCells || dto.Cols > h.maxCells || dto.Rows*dto.Cols > h.maxCells {
		SendErrorOrLog(w, h.log, http.StatusBadRequest,
			fmt.Errorf("%w (%dx%d, max %d cells)", ErrBoardTooLarge, dto.Rows, dto.Cols, h.maxCells))
		return
	}
	if err := mines.ValidateParams(dto.Rows, dto.Cols, dto.Mines); err != nil {
		SendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}

	var seed uint64
	if dto.Seed != nil {
		seed = *dto.Seed
	} else {
		seed = h.nextSeed()
	}

	board, err := mines.Make(dto.Rows, dto.Cols, dto.Mines, mines.WithSeed(seed))
	if err != nil {
		SendErrorOrLog(w, h.log, http.StatusBadRequest, err)
		return
	}
	board.Shuffle()

	for _, p := range dto.Open {
		row, col, err := mines.ParsePosition(p)
		if err == nil {
			err = board.Open(row, col)
		}
		if err != nil {
			SendErrorOrLog(w, h.log, http.StatusBadRequest, err)
			return
		}
	}

	h.log.WithFields(logrus.Fields{
		"rows":   dto.Rows,
		"cols":   dto.Cols,
		"mines":  dto.Mines,
		"seed":   seed,
		"view":   view,
		"opened": len(dto.Open),
	}).Debug("rendering dump")

	w.Header().Set("X-Board-Seed", fmt.Sprint(seed))
	if format == FormatJSON {
		SendJSONOrLog(w, h.log, NewDumpDTO(board, seed, view, board.Render(view)))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if view == mines.ViewUncover {
		err = board.Dumps(w)
	} else {
		_, err = w.Write([]byte(board.Render(view).String()))
	}
	if err != nil {
		h.log.WithError(err).Error("failed to send dump")
	}
}
