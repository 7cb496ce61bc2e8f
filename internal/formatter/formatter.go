// package formatter renders the move journal as CSV, Markdown, plain text or JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/desertthunder/cardswap/internal/models"
	"github.com/desertthunder/cardswap/internal/shared"
)

// Format names an export format.
type Format string

const (
	FormatText     Format = "text"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "text", "txt":
		return FormatText, nil
	case "csv":
		return FormatCSV, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: format %q", shared.ErrInvalidFlag, s)
	}
}

// Export renders moves in format f.
func Export(moves []*models.MoveRecord, f Format) ([]byte, error) {
	switch f {
	case FormatCSV:
		return ExportToCSV(moves)
	case FormatMarkdown:
		return ExportToMarkdown(moves)
	case FormatJSON:
		return ExportToJSON(moves)
	default:
		return ExportToText(moves)
	}
}

// ExportToCSV writes one row per move with columns: Sequence, Session, Item, From, To, Position, SettleMS, CreatedAt
func ExportToCSV(moves []*models.MoveRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Sequence", "Session", "Item", "From", "To", "Position", "SettleMS", "CreatedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, m := range moves {
		record := []string{
			strconv.Itoa(m.Sequence()),
			m.SessionID(),
			m.Item(),
			m.FromSide(),
			m.ToSide(),
			strconv.Itoa(m.Position()),
			strconv.Itoa(m.SettleDelayMS()),
			m.CreatedAt().UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders moves as a Markdown table
func ExportToMarkdown(moves []*models.MoveRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Move Journal\n\n")
	buf.WriteString(fmt.Sprintf("**Moves**: %d\n\n", len(moves)))

	if len(moves) == 0 {
		return buf.Bytes(), nil
	}

	buf.WriteString("| # | Item | From | To | Position | Session |\n")
	buf.WriteString("|---|------|------|----|----------|---------|\n")
	for _, m := range moves {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s | %d | %s |\n",
			m.Sequence(), m.Item(), m.FromSide(), m.ToSide(), m.Position(), shortID(m.SessionID())))
	}

	return buf.Bytes(), nil
}

// ExportToText renders one line per move
func ExportToText(moves []*models.MoveRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Moves: %d\n\n", len(moves)))
	for _, m := range moves {
		buf.WriteString(fmt.Sprintf("%d. %s: %s → %s (slot %d) [%s]\n",
			m.Sequence(), m.Item(), m.FromSide(), m.ToSide(), m.Position(), shortID(m.SessionID())))
	}

	return buf.Bytes(), nil
}

type moveJSON struct {
	ID            string    `json:"id"`
	Sequence      int       `json:"sequence"`
	SessionID     string    `json:"session_id"`
	Item          string    `json:"item"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Position      int       `json:"position"`
	SettleDelayMS int       `json:"settle_delay_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

// ExportToJSON renders moves as an indented JSON array
func ExportToJSON(moves []*models.MoveRecord) ([]byte, error) {
	out := make([]moveJSON, 0, len(moves))
	for _, m := range moves {
		out = append(out, moveJSON{
			ID:            m.ID(),
			Sequence:      m.Sequence(),
			SessionID:     m.SessionID(),
			Item:          m.Item(),
			From:          m.FromSide(),
			To:            m.ToSide(),
			Position:      m.Position(),
			SettleDelayMS: m.SettleDelayMS(),
			CreatedAt:     m.CreatedAt().UTC(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteExport renders moves in format f and writes them to path.
func WriteExport(moves []*models.MoveRecord, f Format, path string) error {
	if path == "" {
		return fmt.Errorf("%w: output path", shared.ErrMissingArgument)
	}

	data, err := Export(moves, f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
