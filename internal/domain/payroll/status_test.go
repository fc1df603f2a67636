package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransition(t *testing.T) {
	t.Parallel()

	legal := []struct{ from, to Status }{
		{StatusDraft, StatusProcessing},
		{StatusDraft, StatusValidated},
		{StatusProcessing, StatusValidated},
		{StatusValidated, StatusSubmitted},
		{StatusSubmitted, StatusApproved},
		{StatusSubmitted, StatusRejected},
		{StatusApproved, StatusPaid},
	}
	for _, e := range legal {
		assert.True(t, e.from.CanTransition(e.to), "%s -> %s should be legal", e.from, e.to)
	}
}

func TestStatusCanTransition_IllegalEdges(t *testing.T) {
	t.Parallel()

	all := []Status{
		StatusDraft, StatusProcessing, StatusValidated,
		StatusSubmitted, StatusApproved, StatusPaid, StatusRejected,
	}
	legal := map[Status]map[Status]bool{
		StatusDraft:      {StatusProcessing: true, StatusValidated: true},
		StatusProcessing: {StatusValidated: true},
		StatusValidated:  {StatusSubmitted: true},
		StatusSubmitted:  {StatusApproved: true, StatusRejected: true},
		StatusApproved:   {StatusPaid: true},
	}

	for _, from := range all {
		for _, to := range all {
			want := legal[from][to]
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusPaid.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusDraft.IsTerminal())
	assert.False(t, StatusSubmitted.IsTerminal())
}

func TestStatusRejectedOnlyFromSubmitted(t *testing.T) {
	t.Parallel()

	for _, from := range []Status{StatusDraft, StatusProcessing, StatusValidated, StatusApproved, StatusPaid} {
		assert.False(t, from.CanTransition(StatusRejected), "rejected must not be reachable from %s", from)
	}
	assert.True(t, StatusSubmitted.CanTransition(StatusRejected))
}

func TestStatusIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusDraft.IsValid())
	assert.False(t, Status("finalized").IsValid())
}
