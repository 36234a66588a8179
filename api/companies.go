package api

import (
	"context"
	"fmt"
)

// ListCompanies returns all companies, oldest first.
func (c *Client) ListCompanies(ctx context.Context) ([]Company, error) {
	var companies []Company
	if err := c.getJSON(ctx, "/api/companies", &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// CreateCompany creates a company record from the given profile. Callers
// must check the returned ID: the backend signals some failures with a
// 2xx body that simply lacks one.
func (c *Client) CreateCompany(ctx context.Context, req CreateCompanyRequest) (Company, error) {
	var company Company
	if err := c.postJSON(ctx, "/api/companies", req, &company); err != nil {
		return Company{}, err
	}
	return company, nil
}

// GetCompany returns the full profile for one company.
func (c *Client) GetCompany(ctx context.Context, id int) (Company, error) {
	var company Company
	if err := c.getJSON(ctx, fmt.Sprintf("/api/companies/%d", id), &company); err != nil {
		return Company{}, err
	}
	return company, nil
}
