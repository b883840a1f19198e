package repository

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
)

type seedFile struct {
	Meetings []*entities.Meeting `yaml:"meetings"`
}

// LoadSeedFile reads a YAML meeting list. Seeded meetings always start pending.
func LoadSeedFile(path string) ([]*entities.Meeting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return DecodeSeed(f)
}

// DecodeSeed decodes a YAML meeting list from r
func DecodeSeed(r io.Reader) ([]*entities.Meeting, error) {
	var sf seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	seen := make(map[string]struct{}, len(sf.Meetings))
	for i, m := range sf.Meetings {
		if m == nil || m.ID == "" {
			return nil, fmt.Errorf("seed meeting #%d: %w", i+1, entities.ErrInvalidMeeting)
		}
		if _, dup := seen[m.ID]; dup {
			return nil, fmt.Errorf("seed meeting %s: %w", m.ID, entities.ErrMeetingExists)
		}
		seen[m.ID] = struct{}{}
		m.Status = entities.MeetingStatusPending
		m.Analysis = nil
	}
	return sf.Meetings, nil
}
