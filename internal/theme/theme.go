// Package theme defines the widget theming schema: pure data consumed by
// the embedded UI to style the bubble button, the chat window and their
// sub-components. The server ships it to the widget loader as JSON.
package theme

// Theme is the top-level theming object.
type Theme struct {
	Button     ButtonTheme     `json:"button" yaml:"button" koanf:"button"`
	Tooltip    TooltipTheme    `json:"tooltip" yaml:"tooltip" koanf:"tooltip"`
	Disclaimer Disclaimer      `json:"disclaimer" yaml:"disclaimer" koanf:"disclaimer"`
	ChatWindow ChatWindowTheme `json:"chatWindow" yaml:"chat_window" koanf:"chat_window"`
}

// ButtonTheme styles the floating chat bubble.
type ButtonTheme struct {
	BackgroundColor string         `json:"backgroundColor" yaml:"background_color" koanf:"background_color"`
	IconColor       string         `json:"iconColor" yaml:"icon_color" koanf:"icon_color"`
	CustomIconSrc   string         `json:"customIconSrc,omitempty" yaml:"custom_icon_src" koanf:"custom_icon_src"`
	Size            string         `json:"size" yaml:"size" koanf:"size"` // "small", "medium", "large"
	Right           int            `json:"right" yaml:"right" koanf:"right"`
	Bottom          int            `json:"bottom" yaml:"bottom" koanf:"bottom"`
	DragAndDrop     bool           `json:"dragAndDrop" yaml:"drag_and_drop" koanf:"drag_and_drop"`
	AutoWindowOpen  AutoWindowOpen `json:"autoWindowOpen" yaml:"auto_window_open" koanf:"auto_window_open"`
}

// AutoWindowOpen controls opening the chat window without a click.
type AutoWindowOpen struct {
	AutoOpen         bool `json:"autoOpen" yaml:"auto_open" koanf:"auto_open"`
	OpenDelay        int  `json:"openDelay" yaml:"open_delay" koanf:"open_delay"`
	AutoOpenOnMobile bool `json:"autoOpenOnMobile" yaml:"auto_open_on_mobile" koanf:"auto_open_on_mobile"`
}

// TooltipTheme styles the bubble tooltip.
type TooltipTheme struct {
	ShowTooltip     bool   `json:"showTooltip" yaml:"show_tooltip" koanf:"show_tooltip"`
	TooltipMessage  string `json:"tooltipMessage" yaml:"tooltip_message" koanf:"tooltip_message"`
	BackgroundColor string `json:"tooltipBackgroundColor" yaml:"background_color" koanf:"background_color"`
	TextColor       string `json:"tooltipTextColor" yaml:"text_color" koanf:"text_color"`
	FontSize        int    `json:"tooltipFontSize" yaml:"font_size" koanf:"font_size"`
}

// Disclaimer configures the consent popup shown before the first message.
type Disclaimer struct {
	ShowPopup  bool   `json:"showPopup" yaml:"show_popup" koanf:"show_popup"`
	Title      string `json:"title" yaml:"title" koanf:"title"`
	Message    string `json:"message" yaml:"message" koanf:"message"`
	ButtonText string `json:"buttonText" yaml:"button_text" koanf:"button_text"`
	DenyText   string `json:"denyButtonText" yaml:"deny_text" koanf:"deny_text"`
}

// ChatWindowTheme styles the chat window and its sub-components.
type ChatWindowTheme struct {
	Title             string         `json:"title" yaml:"title" koanf:"title"`
	TitleAvatarSrc    string         `json:"titleAvatarSrc,omitempty" yaml:"title_avatar_src" koanf:"title_avatar_src"`
	WelcomeMessage    string         `json:"welcomeMessage" yaml:"welcome_message" koanf:"welcome_message"`
	ErrorMessage      string         `json:"errorMessage" yaml:"error_message" koanf:"error_message"`
	BackgroundColor   string         `json:"backgroundColor" yaml:"background_color" koanf:"background_color"`
	Height            int            `json:"height" yaml:"height" koanf:"height"`
	Width             int            `json:"width" yaml:"width" koanf:"width"`
	FontSize          int            `json:"fontSize" yaml:"font_size" koanf:"font_size"`
	ShowAgentMessages bool           `json:"showAgentMessages" yaml:"show_agent_messages" koanf:"show_agent_messages"`
	StarterPrompts    []string       `json:"starterPrompts" yaml:"starter_prompts" koanf:"starter_prompts"`
	BotMessage        MessageTheme   `json:"botMessage" yaml:"bot_message" koanf:"bot_message"`
	UserMessage       MessageTheme   `json:"userMessage" yaml:"user_message" koanf:"user_message"`
	TextInput         TextInputTheme `json:"textInput" yaml:"text_input" koanf:"text_input"`
	Footer            FooterTheme    `json:"footer" yaml:"footer" koanf:"footer"`
}

// MessageTheme styles one side of the conversation.
type MessageTheme struct {
	BackgroundColor string `json:"backgroundColor" yaml:"background_color" koanf:"background_color"`
	TextColor       string `json:"textColor" yaml:"text_color" koanf:"text_color"`
	ShowAvatar      bool   `json:"showAvatar" yaml:"show_avatar" koanf:"show_avatar"`
	AvatarSrc       string `json:"avatarSrc,omitempty" yaml:"avatar_src" koanf:"avatar_src"`
}

// TextInputTheme styles the message input row.
type TextInputTheme struct {
	Placeholder     string `json:"placeholder" yaml:"placeholder" koanf:"placeholder"`
	BackgroundColor string `json:"backgroundColor" yaml:"background_color" koanf:"background_color"`
	TextColor       string `json:"textColor" yaml:"text_color" koanf:"text_color"`
	SendButtonColor string `json:"sendButtonColor" yaml:"send_button_color" koanf:"send_button_color"`
	MaxChars        int    `json:"maxChars" yaml:"max_chars" koanf:"max_chars"`
	MaxCharsWarning string `json:"maxCharsWarningMessage" yaml:"max_chars_warning" koanf:"max_chars_warning"`
	AutoFocus       bool   `json:"autoFocus" yaml:"auto_focus" koanf:"auto_focus"`
}

// FooterTheme styles the footer line under the input.
type FooterTheme struct {
	Text        string `json:"text" yaml:"text" koanf:"text"`
	Company     string `json:"company" yaml:"company" koanf:"company"`
	CompanyLink string `json:"companyLink" yaml:"company_link" koanf:"company_link"`
	TextColor   string `json:"textColor" yaml:"text_color" koanf:"text_color"`
}

// Default returns the shipped look of the widget.
func Default() Theme {
	return Theme{
		Button: ButtonTheme{
			BackgroundColor: "#3B81F6",
			IconColor:       "white",
			Size:            "medium",
			Right:           20,
			Bottom:          20,
		},
		Tooltip: TooltipTheme{
			ShowTooltip:     true,
			TooltipMessage:  "Hi there 👋",
			BackgroundColor: "black",
			TextColor:       "white",
			FontSize:        16,
		},
		ChatWindow: ChatWindowTheme{
			Title:           "Chat",
			WelcomeMessage:  "Hello! How can I help you today?",
			ErrorMessage:    "Something went wrong. Please try again.",
			BackgroundColor: "#ffffff",
			Height:          700,
			Width:           400,
			FontSize:        16,
			BotMessage: MessageTheme{
				BackgroundColor: "#f7f8ff",
				TextColor:       "#303235",
				ShowAvatar:      true,
			},
			UserMessage: MessageTheme{
				BackgroundColor: "#3B81F6",
				TextColor:       "#ffffff",
				ShowAvatar:      true,
			},
			TextInput: TextInputTheme{
				Placeholder:     "Type your question",
				BackgroundColor: "#ffffff",
				TextColor:       "#303235",
				SendButtonColor: "#3B81F6",
				MaxChars:        1000,
				MaxCharsWarning: "You exceeded the characters limit.",
				AutoFocus:       true,
			},
			Footer: FooterTheme{
				Text:    "Powered by",
				Company: "chatembed",
			},
		},
	}
}
