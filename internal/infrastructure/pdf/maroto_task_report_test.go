package pdf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestor-Tareas/internal/application/dto"
	"github.com/jhoicas/Gestor-Tareas/internal/domain/entity"
)

func TestRenderTaskReport_GeneraPDF(t *testing.T) {
	tasks := []dto.TaskView{
		dto.NewTaskView(entity.Task{ID: "1", Title: "Implementar autenticación", State: entity.TaskCompleted,
			AssignedUsers: []entity.UserSummary{{ID: "u1", FirstName: "Admin", LastName: "Sistema"}}}),
		dto.NewTaskView(entity.Task{ID: "2", Title: "Testing y QA", Description: "Pruebas", State: entity.TaskPending}),
	}

	out, err := NewTaskReport("Gestor de Tareas").RenderTaskReport("Informe de tareas", tasks, dto.CountTasks(tasks))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderTaskReport_SinTareas(t *testing.T) {
	out, err := NewTaskReport("").RenderTaskReport("Vacío", nil, dto.TaskCounts{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestAssignees(t *testing.T) {
	v := dto.NewTaskView(entity.Task{AssignedUsers: []entity.UserSummary{
		{ID: "1", FirstName: "Ana", LastName: "Paz"},
		{ID: "2", Email: "solo@correo.com"},
	}})
	assert.Equal(t, "Ana Paz, solo@correo.com", assignees(v))
	assert.Equal(t, "Sin asignar", assignees(dto.TaskView{}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate(" abc ", 5))
	long := strings.Repeat("ñ", 10)
	assert.Equal(t, strings.Repeat("ñ", 4)+"...", truncate(long, 4))
}
