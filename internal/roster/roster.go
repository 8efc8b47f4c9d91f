package roster

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vgi/vgi-server/internal/model"
)

// MaxMembers is the Helix cap on ids per request; the streams endpoint issues one batched
// read per resource, so the roster must fit in a single request.
const MaxMembers = 100

type file struct {
	MemberInformation []model.Member `yaml:"memberInformation"`
}

type Roster struct {
	ids []string
}

func New(members []model.Member) (*Roster, error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("roster is empty")
	}
	if len(members) > MaxMembers {
		return nil, fmt.Errorf("roster has %d members, at most %d are supported", len(members), MaxMembers)
	}

	seen := make(map[string]struct{}, len(members))
	ids := make([]string, 0, len(members))
	for i, m := range members {
		id := strings.TrimSpace(m.TwitchID)
		if id == "" {
			return nil, fmt.Errorf("member %d has no twitchId", i)
		}
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("duplicate twitchId %s", id)
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return &Roster{
		ids: ids,
	}, nil
}

// Load reads the roster from a YAML file.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}

	return New(f.MemberInformation)
}

func MustLoad(path string) *Roster {
	r, err := Load(path)
	if err != nil {
		log.Fatalf("failed to load roster: %v", err)
	}

	return r
}

// IDs returns a copy of the member account ids in file order.
func (r *Roster) IDs() []string {
	out := make([]string, len(r.ids))
	copy(out, r.ids)
	return out
}

// Marshal renders members in the roster file format.
func Marshal(members []model.Member) ([]byte, error) {
	return yaml.Marshal(file{MemberInformation: members})
}
