package firestore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection names in the Firestore project.
const (
	colUsers           = "users"
	colCompanyProfiles = "companyProfiles"
	colPortfolio       = "portfolioProjects"
	colProjects        = "projects"
	colNotifications   = "notifications"
)

// isNotFound reports whether a Firestore error means the document does not exist.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
