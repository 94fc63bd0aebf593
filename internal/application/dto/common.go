package dto

// ErrorResponse cuerpo de error HTTP. Notification es el aviso que la vista muestra.
type ErrorResponse struct {
	Code         string        `json:"code"`
	Message      string        `json:"message"`
	Notification *Notification `json:"notification,omitempty"`
}

// Variantes de Notification.
const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notification aviso tipo toast: título, descripción y variante.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// Success aviso de operación completada.
func Success(title, description string) *Notification {
	return &Notification{Title: title, Description: description, Variant: VariantDefault}
}

// Failure aviso de error con título fijo "Error".
func Failure(description string) *Notification {
	return &Notification{Title: "Error", Description: description, Variant: VariantDestructive}
}
