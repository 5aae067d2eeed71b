package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
	"github.com/Revolutionnnn/gestor-ia/internal/client/services"
)

// browse renders the public catalog with the current search/category state.
func (a *App) browse(ctx context.Context) {
	list, categories, err := a.catalog.Browse(ctx, a.searchTerm, a.category)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "Categorías: %s\n", strings.Join(categories, ", "))
	if a.searchTerm != "" || a.category != services.AllCategories {
		fmt.Fprintf(a.out, "Filtro: %q / categoría %q\n", a.searchTerm, a.category)
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "No encontramos resultados. Prueba con otra palabra clave o cambia la categoría.")
		return
	}

	for _, p := range list {
		a.printProductLine(p)
	}
}

func (a *App) search(ctx context.Context, term string) {
	a.searchTerm = term
	a.browse(ctx)
}

func (a *App) selectCategory(ctx context.Context, category string) {
	if category == "" {
		category = services.AllCategories
	}
	a.category = category
	a.browse(ctx)
}

func (a *App) show(ctx context.Context, id string) {
	p, err := a.catalog.Get(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "%s (%s)\n", p.Name, p.Category)
	fmt.Fprintln(a.out, p.Description)
	fmt.Fprintf(a.out, "Precio: $%.2f | Stock: %d uds.\n", p.Price, p.Stock)
	if len(p.Tags) > 0 {
		fmt.Fprintf(a.out, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	if p.Cover != "" {
		fmt.Fprintf(a.out, "Imagen: %s\n", p.Cover)
	}
}

func (a *App) sell(ctx context.Context, id string) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Inicia sesión para vender productos.")
		return
	}

	result, err := a.catalog.Sell(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "Vendido: %s. Stock restante: %d\n", result.Name, result.Stock)
	if result.LowStockAlertSent {
		fmt.Fprintln(a.out, "Aviso: stock bajo.")
	}
}

func (a *App) printProductLine(p *models.Product) {
	marker := " "
	if p.Highlight {
		marker = "*"
	}
	fmt.Fprintf(a.out, "%s %-38s %-12s $%8.2f  %3d uds.  [%s]\n", marker, p.Name, p.Category, p.Price, p.Stock, p.ID)
}
