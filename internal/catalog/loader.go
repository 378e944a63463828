// Package catalog carga el catálogo de películas desde CSV.
// El catálogo no se cachea: cada request vuelve a leer el archivo.
package catalog

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/Disu2004/CineSense/internal/apperr"
	"github.com/Disu2004/CineSense/internal/models"
)

// MaxRows limita cuántas filas se aceptan por lectura. El escaneo completo
// por request solo es viable gracias a este tope; si se cambia hay que
// revisar el costo del scorer.
const MaxRows = 30000

// Source identifica uno de los dos CSV disponibles.
type Source string

const (
	SourceBollywood Source = "bollywood"
	SourceHollywood Source = "hollywood"
)

// SourceForIndustry mapea la industria de una preferencia a su fuente.
// Todo lo que no sea "bollywood" (sin importar mayúsculas) es hollywood.
func SourceForIndustry(industry string) Source {
	if strings.EqualFold(strings.TrimSpace(industry), string(SourceBollywood)) {
		return SourceBollywood
	}
	return SourceHollywood
}

// Delimiter es el separador de géneros dentro del campo genre:
// coma para bollywood, pipe para hollywood.
func (s Source) Delimiter() string {
	if s == SourceBollywood {
		return ","
	}
	return "|"
}

type Loader struct {
	bollywoodPath string
	hollywoodPath string
}

func NewLoader(bollywoodPath, hollywoodPath string) *Loader {
	return &Loader{bollywoodPath: bollywoodPath, hollywoodPath: hollywoodPath}
}

func (l *Loader) path(src Source) string {
	if src == SourceBollywood {
		return l.bollywoodPath
	}
	return l.hollywoodPath
}

// Load lee el CSV de la fuente indicada y devuelve las filas aceptadas.
// Una fila se acepta solo si título, géneros e id quedan no vacíos después
// de recortar espacios; el resto se descarta en silencio. Si no se acepta
// ninguna fila el catálogo se considera vacío y eso es un error duro,
// distinto de "ninguna película coincide con el usuario".
func (l *Loader) Load(src Source) ([]models.CatalogItem, error) {
	f, err := os.Open(l.path(src))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "no se pudo abrir el catálogo", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, apperr.New(apperr.KindEmptyCatalog, "CSV Parsing failed or empty")
	}
	cols := resolveColumns(header)

	delim := src.Delimiter()
	var items []models.CatalogItem

	for len(items) < MaxRows {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// fila malformada: se descarta igual que una fila incompleta
			continue
		}

		title := strings.TrimSpace(field(rec, cols.title))
		genres := strings.TrimSpace(field(rec, cols.genres))
		imdbID := strings.TrimSpace(field(rec, cols.id))
		if title == "" || genres == "" || imdbID == "" {
			continue
		}

		items = append(items, models.CatalogItem{
			Title:  title,
			Genres: splitGenres(genres, delim),
			IMDBID: imdbID,
		})
	}

	if len(items) == 0 {
		return nil, apperr.New(apperr.KindEmptyCatalog, "CSV Parsing failed or empty")
	}
	return items, nil
}

// Los dos CSV usan nombres de columna distintos; se acepta cualquiera
// de las variantes conocidas.
type columns struct {
	title  int
	genres int
	id     int
}

func resolveColumns(header []string) columns {
	c := columns{title: -1, genres: -1, id: -1}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF"))
		switch name {
		case "movie_name", "title":
			if c.title < 0 {
				c.title = i
			}
		case "genre", "genres":
			if c.genres < 0 {
				c.genres = i
			}
		case "movie_id", "imdbId":
			if c.id < 0 {
				c.id = i
			}
		}
	}
	return c
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return rec[idx]
}

func splitGenres(raw, delim string) []string {
	parts := strings.Split(raw, delim)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
