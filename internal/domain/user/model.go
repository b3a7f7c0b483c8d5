package user

import "time"

// Account is one registered user. Salt and PasswordHash are written once at
// registration and never change; there is no password-change flow.
type Account struct {
	Username     string
	Age          string
	Sex          string
	Reason       string
	PasswordHash string // hex digest of password+salt
	Salt         string
	CreatedAt    time.Time
}

// Identity is what a successful authentication yields. Bootstrap marks the
// configured admin backdoor, which has no backing Account.
type Identity struct {
	Username  string
	Reason    string
	Bootstrap bool
}

// Reason-for-use catalog from the mobile app's registration form.
const (
	ReasonEpilepsy      = "Epilepsia"
	ReasonPsychological = "Cuidado psicológico"
	ReasonBoth          = "Ambos"
)

func Reasons() []string {
	return []string{ReasonEpilepsy, ReasonPsychological, ReasonBoth}
}

// TracksSeizures reports whether the account's reason includes epilepsy;
// the crisis screens are hidden for purely psychological use.
func (a *Account) TracksSeizures() bool {
	return a.Reason == ReasonEpilepsy || a.Reason == ReasonBoth
}
