package httpadapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MarcoCalabretta/sudoku/internal/board"
	"github.com/MarcoCalabretta/sudoku/internal/domain"
	"github.com/MarcoCalabretta/sudoku/internal/usecase"
)

// Handler exposes the solver service as a JSON API.
type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(r *gin.Engine) {
	api := r.Group("/api")
	api.POST("/solve", h.solve)
	api.POST("/validate", h.validate)
	api.POST("/hint", h.hint)
	api.POST("/puzzles", h.save)
	api.GET("/puzzles", h.list)
	api.GET("/puzzles/:id", h.load)
	r.GET("/healthz", h.health)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ---- Solve ----

type solveReq struct {
	Size   int           `json:"size" binding:"required"`
	Givens []domain.Clue `json:"givens"`
}

type solveResp struct {
	Status     string  `json:"status"`
	Grid       [][]int `json:"grid,omitempty"`
	DurationMs int64   `json:"durationMs"`
	Nodes      int     `json:"nodes"`
}

func (h *Handler) solve(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	p := &domain.Puzzle{Size: req.Size, Givens: req.Givens}
	b, status, st, err := h.UC.SolvePuzzle(c.Request.Context(), p)
	if err != nil {
		code := http.StatusBadRequest
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			code = http.StatusRequestTimeout
		}
		c.JSON(code, gin.H{"error": err.Error()})
		return
	}
	resp := solveResp{Status: status.String(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes}
	if status == domain.Solved {
		resp.Grid = b.Grid()
	}
	c.JSON(http.StatusOK, resp)
}

// ---- Validate ----

type validateReq struct {
	Grid [][]int `json:"grid" binding:"required"`
}

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
}

func (h *Handler) validate(c *gin.Context) {
	var req validateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(c.Request.Context(), req.Grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
}

func (h *Handler) hint(c *gin.Context) {
	var req solveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	p := &domain.Puzzle{Size: req.Size, Givens: req.Givens}
	hh, found, err := h.UC.Hint(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, hintResp{Found: found, Hint: hh})
}

// ---- Save / Load / List ----

func (h *Handler) save(c *gin.Context) {
	var p domain.Puzzle
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON: " + err.Error()})
		return
	}
	// reject puzzles whose givens do not fit a board before persisting
	if _, err := board.FromPuzzle(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.UC.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func (h *Handler) load(c *gin.Context) {
	p, err := h.UC.Load(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzle": p})
}

func (h *Handler) list(c *gin.Context) {
	ps, err := h.UC.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"puzzles": ps})
}
