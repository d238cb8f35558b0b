package entity

// LinkState is the context carried through the provider redirect round trip.
type LinkState struct {
	WorkspaceID string
	Platform    *Platform // nil when the encoding predates platform tagging
}

// LinkStage names a step of the authorize/callback flow, used for logging.
type LinkStage string

const (
	LinkStageInitiated        LinkStage = "initiated"
	LinkStageRedirected       LinkStage = "redirected"
	LinkStageCallbackReceived LinkStage = "callback_received"
	LinkStageExchanged        LinkStage = "exchanged"
	LinkStagePersisted        LinkStage = "persisted"
	LinkStageRedirectedToApp  LinkStage = "redirected_to_app"
	LinkStageFailed           LinkStage = "failed"
)
