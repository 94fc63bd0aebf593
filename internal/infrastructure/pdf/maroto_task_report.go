// Package pdf genera el informe de tareas de la consola de administración.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del informe      │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Pendientes | En Progreso | Completadas     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: # | Título / Descripción | Estado | Asignados        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorPending = &props.Color{Red: 202, Green: 138, Blue: 4}
	colorActive  = &props.Color{Red: 37, Green: 99, Blue: 235}
	colorDone    = &props.Color{Red: 22, Green: 163, Blue: 74}
)

const maxDescription = 160

// TaskReport implementa ports.TaskReportRenderer usando Maroto v2.
type TaskReport struct {
	author string
	now    func() time.Time
}

// NewTaskReport construye el generador; author va en los metadatos del PDF.
func NewTaskReport(author string) *TaskReport {
	return &TaskReport{author: author, now: time.Now}
}

// RenderTaskReport genera el PDF y devuelve sus bytes.
func (g *TaskReport) RenderTaskReport(title string, tasks []dto.TaskView, counts dto.TaskCounts) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(counts))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(tasks) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay tareas registradas", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range taskRows(tasks) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar informe: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title string, at time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: contadores por estado con su porcentaje.
func summaryRow(c dto.TaskCounts) core.Row {
	stats := dto.NewTaskStats(c)
	box := func(label string, n, pct int, color *props.Color) core.Col {
		sub := ""
		if label != "Total" {
			sub = strconv.Itoa(pct) + "% del total"
		}
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(strconv.Itoa(n), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: color, Top: 5, Align: align.Center,
			}),
			text.New(sub, props.Text{Size: 7, Color: colorGray, Top: 13, Align: align.Center}),
		)
	}
	return row.New(20).Add(
		box("Total", c.Total, 100, colorPrimary),
		box(entity.TaskPending.Label(), c.Pending, stats.PendingPct, colorPending),
		box(entity.TaskInProgress.Label(), c.InProgress, stats.InProgressPct, colorActive),
		box(entity.TaskCompleted.Label(), c.Completed, stats.CompletedPct, colorDone),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("#", 1, align.Center),
		h("Tarea", 6, align.Left),
		h("Estado", 2, align.Center),
		h("Asignados", 3, align.Left),
	)
}

// taskRows: una fila por tarea; la altura crece con la descripción.
func taskRows(tasks []dto.TaskView) []core.Row {
	result := make([]core.Row, 0, len(tasks))
	for _, t := range tasks {
		desc := truncate(t.Description, maxDescription)
		height := 8.0
		if desc != "" {
			height = 14
		}
		result = append(result, row.New(height).Add(
			col.New(1).Add(text.New(t.ID, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(6).Add(
				text.New(t.Title, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1, Left: 1}),
				text.New(desc, props.Text{Size: 7, Color: colorGray, Top: 5, Left: 1}),
			),
			col.New(2).Add(text.New(t.StateLabel, props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: stateColor(t.State),
			})),
			col.New(3).Add(text.New(assignees(t), props.Text{Size: 7, Top: 1, Left: 1})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func stateColor(s entity.TaskState) *props.Color {
	switch s {
	case entity.TaskInProgress:
		return colorActive
	case entity.TaskCompleted:
		return colorDone
	default:
		return colorPending
	}
}

func assignees(t dto.TaskView) string {
	if len(t.AssignedUsers) == 0 {
		return "Sin asignar"
	}
	names := make([]string, 0, len(t.AssignedUsers))
	for _, u := range t.AssignedUsers {
		name := u.FullName
		if name == "" {
			name = u.Email
		}
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// truncate corta en n runas y añade "...".
func truncate(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n]) + "..."
}
