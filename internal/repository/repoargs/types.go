package repoargs

type RepositoryName string

const (
	UserRepoName         RepositoryName = "user"
	NFTRepoName          RepositoryName = "nft"
	TransactionRepoName  RepositoryName = "transaction"
	NotificationRepoName RepositoryName = "notification"
)
