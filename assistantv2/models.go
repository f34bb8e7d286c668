package assistantv2

// Message input types.
const (
	MessageTypeText = "text"
)

// Response types of RuntimeResponseGeneric.
const (
	ResponseTypeText           = "text"
	ResponseTypePause          = "pause"
	ResponseTypeImage          = "image"
	ResponseTypeOption         = "option"
	ResponseTypeConnectToAgent = "connect_to_agent"
	ResponseTypeSuggestion     = "suggestion"
)

// MessageInput is the user input of a stateful message.
type MessageInput struct {
	// MessageType defaults to MessageTypeText on the service side.
	MessageType  *string              `json:"message_type,omitempty"`
	Text         *string              `json:"text,omitempty"`
	Options      *MessageInputOptions `json:"options,omitempty"`
	Intents      []RuntimeIntent      `json:"intents,omitempty"`
	Entities     []RuntimeEntity      `json:"entities,omitempty"`
	SuggestionID *string              `json:"suggestion_id,omitempty"`
}

// MessageInputOptions controls how a stateful message is processed.
type MessageInputOptions struct {
	Restart          *bool `json:"restart,omitempty"`
	AlternateIntents *bool `json:"alternate_intents,omitempty"`
	ReturnContext    *bool `json:"return_context,omitempty"`
	Debug            *bool `json:"debug,omitempty"`
	Export           *bool `json:"export,omitempty"`
}

// MessageInputStateless is the user input of a stateless message.
type MessageInputStateless struct {
	MessageType  *string                       `json:"message_type,omitempty"`
	Text         *string                       `json:"text,omitempty"`
	Options      *MessageInputOptionsStateless `json:"options,omitempty"`
	Intents      []RuntimeIntent               `json:"intents,omitempty"`
	Entities     []RuntimeEntity               `json:"entities,omitempty"`
	SuggestionID *string                       `json:"suggestion_id,omitempty"`
}

// MessageInputOptionsStateless controls how a stateless message is processed.
// The context is always returned for stateless messages.
type MessageInputOptionsStateless struct {
	Restart          *bool `json:"restart,omitempty"`
	AlternateIntents *bool `json:"alternate_intents,omitempty"`
	Debug            *bool `json:"debug,omitempty"`
}

// MessageContext is the state of a session.
type MessageContext struct {
	Global *MessageContextGlobal  `json:"global,omitempty"`
	Skills map[string]interface{} `json:"skills,omitempty"`
}

// MessageContextStateless is the conversation state the caller passes back
// with every stateless message.
type MessageContextStateless struct {
	Global *MessageContextGlobal  `json:"global,omitempty"`
	Skills map[string]interface{} `json:"skills,omitempty"`
}

// MessageContextGlobal holds context shared by all skills.
type MessageContextGlobal struct {
	System    *MessageContextGlobalSystem `json:"system,omitempty"`
	SessionID *string                     `json:"session_id,omitempty"`
}

// MessageContextGlobalSystem is built-in system context.
type MessageContextGlobalSystem struct {
	Timezone      *string `json:"timezone,omitempty"`
	UserID        *string `json:"user_id,omitempty"`
	TurnCount     *int64  `json:"turn_count,omitempty"`
	Locale        *string `json:"locale,omitempty"`
	ReferenceTime *string `json:"reference_time,omitempty"`
}

// MessageOutput is the assistant's output for one turn.
type MessageOutput struct {
	Generic     []RuntimeResponseGeneric `json:"generic,omitempty"`
	Intents     []RuntimeIntent          `json:"intents,omitempty"`
	Entities    []RuntimeEntity          `json:"entities,omitempty"`
	Actions     []DialogNodeAction       `json:"actions,omitempty"`
	Debug       map[string]interface{}   `json:"debug,omitempty"`
	UserDefined map[string]interface{}   `json:"user_defined,omitempty"`
}

// RuntimeResponseGeneric is one response element. Which fields are set
// depends on ResponseType.
type RuntimeResponseGeneric struct {
	ResponseType        string  `json:"response_type"`
	Text                *string `json:"text,omitempty"`
	Time                *int64  `json:"time,omitempty"`
	Typing              *bool   `json:"typing,omitempty"`
	Source              *string `json:"source,omitempty"`
	Title               *string `json:"title,omitempty"`
	Description         *string `json:"description,omitempty"`
	Preference          *string `json:"preference,omitempty"`
	MessageToHumanAgent *string `json:"message_to_human_agent,omitempty"`
}

// RuntimeIntent is an intent recognized in the user input.
type RuntimeIntent struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// RuntimeEntity is an entity value recognized in the user input.
type RuntimeEntity struct {
	Entity     string                 `json:"entity"`
	Location   []int64                `json:"location"`
	Value      string                 `json:"value"`
	Confidence *float64               `json:"confidence,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// DialogNodeAction is an action the client application should run.
type DialogNodeAction struct {
	Name           string                 `json:"name"`
	Type           *string                `json:"type,omitempty"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`
	ResultVariable string                 `json:"result_variable"`
	Credentials    *string                `json:"credentials,omitempty"`
}

// MessageResponse is the result of Message.
type MessageResponse struct {
	Output  *MessageOutput  `json:"output,omitempty"`
	Context *MessageContext `json:"context,omitempty"`
}

// MessageResponseStateless is the result of MessageStateless.
type MessageResponseStateless struct {
	Output  *MessageOutput           `json:"output,omitempty"`
	Context *MessageContextStateless `json:"context,omitempty"`
}

// SessionResponse is the result of CreateSession.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}
