package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/CWiesbaum/raugupatis-log/internal/domain"
	"github.com/CWiesbaum/raugupatis-log/pkg/ctxutil"
)

// catalogFile is the YAML layout accepted by Import.
type catalogFile struct {
	Profiles []catalogEntry `yaml:"profiles"`
}

type catalogEntry struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	MinDays     int     `yaml:"min_days"`
	MaxDays     int     `yaml:"max_days"`
	TempMin     float64 `yaml:"temp_min"`
	TempMax     float64 `yaml:"temp_max"`
	Unit        *string `yaml:"unit,omitempty"`
	Description *string `yaml:"description,omitempty"`
}

func (e catalogEntry) input() CreateProfileInput {
	return CreateProfileInput{
		Name:        e.Name,
		Type:        e.Type,
		MinDays:     e.MinDays,
		MaxDays:     e.MaxDays,
		TempMin:     e.TempMin,
		TempMax:     e.TempMax,
		Unit:        e.Unit,
		Description: e.Description,
	}
}

// ImportResult reports what an Import did.
type ImportResult struct {
	Created []domain.Profile
	Skipped []string
}

// Import reads a YAML profile catalog and creates every profile whose name is
// not taken yet. Existing names are skipped, not updated. The whole catalog
// is validated before anything is written and imported in one transaction.
func (s *Service) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := decodeCatalog(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, e := range entries {
			p := toProfile(e.input())
			exists, err := s.profiles.NameExists(txCtx, p.Name)
			if err != nil {
				return fmt.Errorf("check profile name: %w", err)
			}
			if exists {
				result.Skipped = append(result.Skipped, p.Name)
				continue
			}
			// A unique violation here aborts the transaction, so it fails the import.
			created, err := s.insert(txCtx, userID, p, nil)
			if err != nil {
				return err
			}
			result.Created = append(result.Created, *created)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "profile catalog imported",
		slog.String("user_id", userID.String()),
		slog.Int("created", len(result.Created)),
		slog.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

func decodeCatalog(r io.Reader) ([]catalogEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file catalogFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError("catalog", "empty file")
		}
		return nil, domain.NewValidationError("catalog", fmt.Sprintf("invalid yaml: %v", err))
	}
	if len(file.Profiles) == 0 {
		return nil, domain.NewValidationError("catalog", "no profiles defined")
	}

	var errs []domain.FieldError
	seen := make(map[string]bool, len(file.Profiles))
	for idx, e := range file.Profiles {
		prefix := fmt.Sprintf("profiles[%d].", idx)

		var ve *domain.ValidationError
		if errors.As(e.input().Validate(), &ve) {
			for _, fe := range ve.Errors {
				errs = append(errs, domain.FieldError{Field: prefix + fe.Field, Message: fe.Message})
			}
		}

		name := strings.TrimSpace(e.Name)
		if name != "" && seen[name] {
			errs = append(errs, domain.FieldError{Field: prefix + "name", Message: "duplicate in catalog"})
		}
		seen[name] = true
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	return file.Profiles, nil
}
