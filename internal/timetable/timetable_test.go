package timetable

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

type staticInstitution struct {
	id string
}

func (s staticInstitution) ID() string {
	return s.id
}

func (s staticInstitution) Timetable(context.Context, string) ([]TimeBlock, error) {
	return nil, nil
}

func TestNewTimeBlockSentinels(t *testing.T) {
	block := NewTimeBlock()
	require.Equal(t, Unknown, block.Day)
	require.Equal(t, Unknown, block.Time)
	require.Equal(t, Unknown, block.Duration)
	require.Equal(t, NotAvailable, block.Professor)
	require.Equal(t, NotAvailable, block.Classroom)
	require.Equal(t, NewSubject(), block.Subject)
}

func TestTimeBlockJSONFieldNames(t *testing.T) {
	block := TimeBlock{
		Day:       0,
		Time:      8,
		Duration:  3,
		Professor: "J. Smith",
		Classroom: "P02",
		Subject: Subject{
			Name:         "Algorithms",
			Abbreviation: "Algorithms",
			Location:     "FRI",
			Type:         "LAB",
		},
	}

	out, err := json.Marshal(block)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"day": 0,
		"time": 8,
		"duration": 3,
		"professor": "J. Smith",
		"classroom": "P02",
		"subject": {
			"name": "Algorithms",
			"abbreviation": "Algorithms",
			"location": "FRI",
			"type": "LAB"
		}
	}`, string(out))
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(staticInstitution{id: "fri"}, staticInstitution{id: "fe"})

	inst, ok := reg.Get("fri")
	require.True(t, ok)
	require.Equal(t, "fri", inst.ID())

	inst, ok = reg.Get(" FRI ")
	require.True(t, ok)
	require.Equal(t, "fri", inst.ID())

	_, ok = reg.Get("fmf")
	require.False(t, ok)

	require.Equal(t, []string{"fe", "fri"}, reg.IDs())
}

func TestRegistryRejectsEmptyID(t *testing.T) {
	require.Panics(t, func() { NewRegistry(staticInstitution{}) })
}
