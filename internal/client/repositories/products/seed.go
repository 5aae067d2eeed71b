package products

import "github.com/Revolutionnnn/gestor-ia/internal/client/models"

// seedProducts is the starter catalog used when the local store is empty.
func seedProducts() []*models.RawProduct {
	highlighted := true
	return []*models.RawProduct{
		{
			ID:          "prd-neo-001",
			Name:        "Auriculares Nova Air",
			Description: "Auriculares inalámbricos con cancelación activa de ruido, modo transparencia y hasta 32 horas de autonomía.",
			Price:       129.99,
			Stock:       24,
			Category:    "Audio",
			Tags:        []string{"Bluetooth 5.3", "ANC", "Carga rápida"},
			Status:      "Publicado",
			Highlight:   &highlighted,
			Cover:       "https://images.unsplash.com/photo-1518444028785-8fbcd101ebb9?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "prd-neo-002",
			Name:        "Smartwatch Pulse X",
			Description: "Monitoriza salud, entrenamientos y notificaciones con un diseño ultra fino resistente al agua (5ATM).",
			Price:       189.0,
			Stock:       18,
			Category:    "Wearables",
			Tags:        []string{"Oxígeno", "GPS", "Pagos NFC"},
			Status:      "Publicado",
			Cover:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "prd-neo-003",
			Name:        "Lámpara Orbit Glow",
			Description: "Iluminación inteligente con temperatura ajustable, automatizaciones y sensores de presencia integrados.",
			Price:       79.5,
			Stock:       42,
			Category:    "Smart Home",
			Tags:        []string{"Matter", "Sensores", "RGB"},
			Status:      "Publicado",
			Highlight:   &highlighted,
			Cover:       "https://images.unsplash.com/photo-1505691938895-1758d7feb511?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "prd-neo-004",
			Name:        "Mochila City Pro 24L",
			Description: "Textil impermeable reciclado, bolsillo para portátil de 16” y compartimentos magnéticos.",
			Price:       109.9,
			Stock:       12,
			Category:    "Accesorios",
			Tags:        []string{"Reciclado", "Minimal", "Impermeable"},
			Status:      "Publicado",
			Cover:       "https://images.unsplash.com/photo-1500530855697-b586d89ba3ee?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "prd-neo-005",
			Name:        "Teclado Lumen TKL",
			Description: "Teclado mecánico inalámbrico con switches silenciosos, layout compacto y backlight inteligente.",
			Price:       159.0,
			Stock:       35,
			Category:    "Periféricos",
			Tags:        []string{"Hot-swap", "Bluetooth", "RGB"},
			Status:      "Publicado",
			Cover:       "https://images.unsplash.com/photo-1516387938699-a93567ec168e?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:          "prd-neo-006",
			Name:        "Botella térmica Axis",
			Description: "Acero inoxidable de doble pared con sensor táctil de temperatura y boquilla magnética.",
			Price:       49.0,
			Stock:       58,
			Category:    "Lifestyle",
			Tags:        []string{"Acero", "Sensor", "12h frío"},
			Status:      "Publicado",
			Cover:       "https://images.unsplash.com/photo-1503602642458-232111445657?auto=format&fit=crop&w=800&q=80",
		},
	}
}
