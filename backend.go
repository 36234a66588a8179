package brandstudio

import (
	"context"
	"encoding/json"

	"github.com/topbox/brandstudio/api"
)

// Backend is the slice of the remote API the app depends on. api.Client
// satisfies it; handler tests substitute stubs.
type Backend interface {
	ListCompanies(ctx context.Context) ([]api.Company, error)
	CreateCompany(ctx context.Context, req api.CreateCompanyRequest) (api.Company, error)
	GetCompany(ctx context.Context, id int) (api.Company, error)

	GetGuidelines(ctx context.Context, companyID int) (string, error)
	UploadGuidelines(ctx context.Context, companyID int, file api.File) error
	GenerateGuidelines(ctx context.Context, req api.GenerateGuidelinesRequest) (string, error)
	SaveGuidelines(ctx context.Context, companyID int, content string) error

	UploadImages(ctx context.Context, companyID int, images []api.File) ([]string, error)
	AnalyzeImages(ctx context.Context, urls []string) ([]json.RawMessage, error)
	CreateContent(ctx context.Context, req api.CreateContentRequest) (api.ContentPost, error)
	LatestContent(ctx context.Context, companyID int) (api.ContentPost, error)
	SaveContent(ctx context.Context, post api.ContentPost) (api.ContentPost, error)
}

var _ Backend = (*api.Client)(nil)
