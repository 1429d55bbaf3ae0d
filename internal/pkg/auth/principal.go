package auth

// Principal is the end user authenticated by the identity provider
type Principal struct {
	Subject string
}

func (p Principal) SubjectID() string {
	return p.Subject
}
