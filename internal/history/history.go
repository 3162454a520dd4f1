package history

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calc-mcp/internal/calculation"
)

// DefaultFile is the history file used when no path is configured
const DefaultFile = "history.json"

// History is the ordered log of calculations. It is not safe for concurrent use.
type History struct {
	entries []*calculation.Calculation
	logger  *slog.Logger
}

// Option configures a History
type Option func(*History)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(h *History) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// New creates an empty history
func New(opts ...Option) *History {
	h := &History{logger: slog.Default()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Add appends a calculation to the end of the history
func (h *History) Add(calc *calculation.Calculation) {
	h.entries = append(h.entries, calc)
}

// Undo removes the most recent calculation
func (h *History) Undo() string {
	if len(h.entries) == 0 {
		return "No history to undo."
	}

	last := h.entries[len(h.entries)-1]
	h.entries[len(h.entries)-1] = nil
	h.entries = h.entries[:len(h.entries)-1]

	h.logger.Debug("Removed calculation from history", "calculation", last.Describe(), "remaining", len(h.entries))
	return fmt.Sprintf("Undone: %s", last.Describe())
}

// Clear removes every calculation
func (h *History) Clear() string {
	h.entries = nil
	return "History cleared."
}

// List returns the calculations in chronological order. Callers must not modify the slice.
func (h *History) List() []*calculation.Calculation {
	return h.entries
}

// Len returns the number of calculations
func (h *History) Len() int {
	return len(h.entries)
}

// Save writes the history to path, overwriting any existing file
func (h *History) Save(path string) string {
	if err := h.Write(path); err != nil {
		return SaveErrorMessage(path)
	}
	return SavedMessage(path)
}

// Load replaces the history with the calculations stored at path. On any
// failure the current history is left untouched.
func (h *History) Load(path string) string {
	if err := h.Read(path); err != nil {
		return LoadErrorMessage(path, err)
	}
	return LoadedMessage(path)
}

// Write stores the history at path. Errors wrap ErrIOFailure.
func (h *History) Write(path string) error {
	if err := WriteFile(path, h.entries); err != nil {
		h.logger.Debug("Failed to save history", "path", path, "error", err)
		return err
	}
	h.logger.Debug("Saved history", "path", path, "entries", len(h.entries))
	return nil
}

// Read replaces the history with the calculations stored at path. Errors
// wrap one of ErrFileNotFound, ErrDecodeFailure, ErrSchemaMismatch or
// ErrIOFailure, and leave the history untouched.
func (h *History) Read(path string) error {
	entries, err := ReadFile(path)
	if err != nil {
		h.logger.Debug("Failed to load history", "path", path, "error", err)
		return err
	}
	h.entries = entries
	h.logger.Debug("Loaded history", "path", path, "entries", len(entries))
	return nil
}

// SavedMessage is reported after a successful save
func SavedMessage(path string) string {
	return fmt.Sprintf("History saved to %s.", path)
}

// LoadedMessage is reported after a successful load
func LoadedMessage(path string) string {
	return fmt.Sprintf("History loaded from %s.", path)
}

// SaveErrorMessage is reported when a save fails
func SaveErrorMessage(path string) string {
	return fmt.Sprintf("Error: Could not save history to %s.", path)
}

// LoadErrorMessage converts an error returned by ReadFile into a user-facing message
func LoadErrorMessage(path string, err error) string {
	switch {
	case errors.Is(err, ErrFileNotFound):
		return fmt.Sprintf("Error: %s not found.", path)
	case errors.Is(err, ErrDecodeFailure):
		return fmt.Sprintf("Error: Failed to decode history data from %s.", path)
	case errors.Is(err, ErrSchemaMismatch):
		return "Error: Loaded data format is incorrect."
	default:
		return fmt.Sprintf("Error: Could not load history from %s.", path)
	}
}
