package service

import (
	"fmt"

	"skillswap/internal/config"
	"skillswap/internal/models"
)

// SwapRole is the part the actor plays in a swap request.
type SwapRole string

const (
	RoleRequester SwapRole = "requester"
	RoleRequested SwapRole = "requested"
)

type transition struct {
	from models.SwapStatus
	to   models.SwapStatus
	role SwapRole
}

// TransitionPolicy is the table of allowed (from, to, role) status changes.
type TransitionPolicy struct {
	name    string
	allowed map[transition]bool
	// any lets every participant move to any target from any state.
	any bool
}

// PermissivePolicy allows either participant to set any non-pending status
// at any time.
func PermissivePolicy() TransitionPolicy {
	return TransitionPolicy{name: config.TransitionPolicyPermissive, any: true}
}

// StrictPolicy: the requester may cancel and the requested party may accept
// or reject a pending request; either may complete an accepted one. Nothing
// leaves rejected, cancelled or completed.
func StrictPolicy() TransitionPolicy {
	return TransitionPolicy{
		name: config.TransitionPolicyStrict,
		allowed: map[transition]bool{
			{models.SwapStatusPending, models.SwapStatusCancelled, RoleRequester}:  true,
			{models.SwapStatusPending, models.SwapStatusAccepted, RoleRequested}:   true,
			{models.SwapStatusPending, models.SwapStatusRejected, RoleRequested}:   true,
			{models.SwapStatusAccepted, models.SwapStatusCompleted, RoleRequester}: true,
			{models.SwapStatusAccepted, models.SwapStatusCompleted, RoleRequested}: true,
		},
	}
}

// PolicyByName resolves SWAP_TRANSITION_POLICY.
func PolicyByName(name string) (TransitionPolicy, error) {
	switch name {
	case "", config.TransitionPolicyPermissive:
		return PermissivePolicy(), nil
	case config.TransitionPolicyStrict:
		return StrictPolicy(), nil
	default:
		return TransitionPolicy{}, fmt.Errorf("unknown swap transition policy %q", name)
	}
}

func (p TransitionPolicy) Name() string {
	return p.name
}

// Allows reports whether role may move a request from one status to another.
// Pending is never a valid target.
func (p TransitionPolicy) Allows(from, to models.SwapStatus, role SwapRole) bool {
	if !to.IsTransitionTarget() {
		return false
	}
	if p.any {
		return true
	}
	return p.allowed[transition{from, to, role}]
}
