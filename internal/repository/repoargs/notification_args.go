package repoargs

type CreateNotification struct {
	UserID  int64
	Message string
}
