package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Revolutionnnn/gestor-ia/internal/client/models"
)

// adminList refreshes and renders the full collection, active or not.
func (a *App) adminList(ctx context.Context) {
	list, err := a.admin.Refresh(ctx)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	if len(list) == 0 {
		fmt.Fprintln(a.out, "Aún no hay productos. Crea el primero con 'create'.")
		return
	}

	for _, p := range list {
		state := "activo"
		if !p.IsActive {
			state = "inactivo"
		}
		fmt.Fprintf(a.out, "%-38s %-12s $%8.2f  %3d uds.  %-8s [%s]\n", p.Name, p.Category, p.Price, p.Stock, state, p.ID)
	}
}

func (a *App) stats(ctx context.Context) {
	if _, err := a.admin.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	s := a.admin.Stats()
	fmt.Fprintf(a.out, "Total productos:  %d\n", s.TotalProducts)
	fmt.Fprintf(a.out, "Stock disponible: %d\n", s.TotalStock)
	fmt.Fprintf(a.out, "Valor estimado:   $%.2f\n", s.InventoryValue)
	fmt.Fprintf(a.out, "Destacados:       %d\n", s.Highlighted)
	fmt.Fprintf(a.out, "Activos:          %d\n", s.Active)
}

// create walks the new-product form and submits it. Price and stock are
// passed through as entered; normalization coerces or zeroes them.
func (a *App) create(ctx context.Context) {
	raw, err := a.productForm(nil)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.admin.Create(ctx, raw); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Producto creado.")
}

// edit pre-fills the form with the stored record; pressing Enter on a field
// keeps its current value.
func (a *App) edit(ctx context.Context, id string) {
	if _, err := a.admin.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	var current *models.Product
	for _, p := range a.admin.Products() {
		if p.ID == id {
			current = p
			break
		}
	}
	if current == nil {
		fmt.Fprintln(a.out, "Producto no encontrado:", id)
		return
	}

	a.admin.StartEditing(id)
	raw, err := a.productForm(current)
	if err != nil {
		a.admin.CancelEditing()
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.admin.Update(ctx, id, raw); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Producto actualizado.")
}

func (a *App) delete(ctx context.Context, id string) {
	ok, err := GetYesNo(a.reader, fmt.Sprintf("¿Eliminar %s?", id), false, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if !ok {
		return
	}

	if err := a.admin.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Producto eliminado.")
}

func (a *App) toggle(ctx context.Context, id string) {
	if err := a.admin.ToggleActive(ctx, id); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Estado actualizado.")
}

func (a *App) refresh(ctx context.Context) {
	if _, err := a.admin.Refresh(ctx); err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}
	fmt.Fprintln(a.out, "Colección actualizada.")
}

// productForm reads the product fields interactively. With a non-nil current
// record the prompts default to the stored values (edit mode); otherwise
// every field starts blank (create mode).
func (a *App) productForm(current *models.Product) (*models.RawProduct, error) {
	var (
		defName, defTags, defPrice, defStock, defDesc, defCategory, defCover string
		defActive                                                            = true
	)
	if current != nil {
		defName = current.Name
		defTags = strings.Join(current.Tags, ", ")
		defPrice = strconv.FormatFloat(current.Price, 'f', -1, 64)
		defStock = strconv.Itoa(current.Stock)
		defDesc = current.Description
		defCategory = current.Category
		defCover = current.Cover
		defActive = current.IsActive
	}

	name, err := GetTextOrDefault(a.reader, "Nombre", defName, a.out)
	if err != nil {
		return nil, err
	}
	tags, err := GetTextOrDefault(a.reader, "Keywords (separadas por comas)", defTags, a.out)
	if err != nil {
		return nil, err
	}
	price, err := GetTextOrDefault(a.reader, "Precio", defPrice, a.out)
	if err != nil {
		return nil, err
	}
	stock, err := GetTextOrDefault(a.reader, "Stock", defStock, a.out)
	if err != nil {
		return nil, err
	}
	description, err := GetTextOrDefault(a.reader, "Descripción", defDesc, a.out)
	if err != nil {
		return nil, err
	}
	category, err := GetTextOrDefault(a.reader, "Categoría", defCategory, a.out)
	if err != nil {
		return nil, err
	}
	cover, err := GetTextOrDefault(a.reader, "Imagen (URL)", defCover, a.out)
	if err != nil {
		return nil, err
	}
	active, err := GetYesNo(a.reader, "¿Publicar?", defActive, a.out)
	if err != nil {
		return nil, err
	}

	raw := &models.RawProduct{
		Name:        name,
		Description: description,
		Category:    category,
		Cover:       cover,
		IsActive:    &active,
	}
	if tags != "" {
		raw.Tags = models.SplitKeywords(tags)
	}
	if price != "" {
		raw.Price = price
	}
	if stock != "" {
		raw.Stock = stock
	}
	return raw, nil
}
