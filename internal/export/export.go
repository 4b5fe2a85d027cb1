package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todolist/internal/model"
)

// Snapshot writer for the current list. Output only: nothing is read back,
// the list itself lives in memory.

var ErrUnknownFormat = errors.New("unknown export format")

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func Write(w io.Writer, f Format, todos []*model.Todo) error {
	items := make([]model.Todo, 0, len(todos))
	for _, td := range todos {
		items = append(items, *td)
	}

	var b []byte
	var err error
	switch f {
	case JSON:
		b, err = json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		b = append(b, '\n')
	case YAML:
		b, err = yaml.Marshal(items)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
