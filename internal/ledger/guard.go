package ledger

import "github.com/mmynk/fintrack/internal/models"

// RequireMember returns a ForbiddenError unless userID belongs to group.
func RequireMember(group *models.Group, userID string) error {
	if group == nil || !group.HasMember(userID) {
		return &ForbiddenError{Reason: "not a member of this group"}
	}
	return nil
}
