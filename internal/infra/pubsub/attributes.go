package pubsub

import "multipost/internal/domain/service"

// eventAttributes are attached to every message for subscription filters.
func eventAttributes(event *service.AccountLinkedEvent) map[string]string {
	attributes := map[string]string{
		"event":        "account.linked",
		"workspace_id": event.WorkspaceID,
		"platform":     event.Platform,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
