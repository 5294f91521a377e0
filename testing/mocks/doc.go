//go:generate mockgen -destination=http.go -package=mocks -mock_names=ResponseWriter=ResponseWriter net/http ResponseWriter

package mocks
