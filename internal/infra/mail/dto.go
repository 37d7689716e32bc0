package mail

type WelcomeEmailData struct {
	Name         string
	Email        string
	TempPassword string
	LoginURL     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	LoginURL string
}
