package models

// UserAddress est une adresse enregistrée dans le profil.
type UserAddress struct {
	ID        int64  `json:"id"`
	Label     string `json:"label"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

// Preferences sont les réglages du compte.
type Preferences struct {
	Newsletter    bool `json:"newsletter"`
	SMSAlerts     bool `json:"smsAlerts"`
	TwoFactorAuth bool `json:"twoFactorAuth"`
}

// User est le profil de session : identité + document profil fusionné.
type User struct {
	ID          string        `json:"user_id"`
	Name        string        `json:"name,omitempty"`
	Email       string        `json:"email"`
	Password    string        `json:"-"`
	Phone       string        `json:"phone,omitempty"`
	Avatar      string        `json:"avatar,omitempty"`
	Provider    string        `json:"provider,omitempty"` // "local", "google", "facebook"
	ProviderID  string        `json:"-"`
	Addresses   []UserAddress `json:"addresses,omitempty"`
	Preferences Preferences   `json:"preferences"`
}

// États de session : tant que la restauration initiale est en cours, la session
// n'est ni authentifiée ni anonyme.
type SessionState string

const (
	SessionLoading       SessionState = "loading"
	SessionAuthenticated SessionState = "authenticated"
	SessionAnonymous     SessionState = "anonymous"
)

// Session est une variante taguée : User n'est renseigné que si State est
// SessionAuthenticated.
type Session struct {
	State SessionState `json:"state"`
	User  *User        `json:"user,omitempty"`
}

func (s Session) IsAuthenticated() bool { return s.State == SessionAuthenticated }
