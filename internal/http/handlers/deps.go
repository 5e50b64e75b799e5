package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/repos"
	"github.com/sahilthakare215/LeafYGo-Goodness-that-Grows/internal/services"
)

type Deps struct {
	ProductHandler *ProductHandler
	CursorHandler  *CursorHandler

	Cursors *services.CursorService
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	cursorRepo := repos.NewCursorRepo(db)

	catalogSvc := services.NewCatalogService(prodRepo)
	cursorSvc := services.NewCursorService(cursorRepo)

	return &Deps{
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		CursorHandler:  &CursorHandler{Cursors: cursorSvc},
		Cursors:        cursorSvc,
	}
}
