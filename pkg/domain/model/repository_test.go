package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/expo-preview/pkg/domain/model"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    model.Repository
		wantErr bool
	}{
		{name: "valid", input: "expo/expo", want: model.Repository{Owner: "expo", Name: "expo"}},
		{name: "surrounding spaces", input: " octo/app ", want: model.Repository{Owner: "octo", Name: "app"}},
		{name: "owner only", input: "owner", wantErr: true},
		{name: "missing owner", input: "/repo", wantErr: true},
		{name: "missing name", input: "owner/", wantErr: true},
		{name: "too many segments", input: "a/b/c", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := model.ParseRepository(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.Equal(t, got, tt.want)
			gt.Equal(t, got.FullName(), tt.want.Owner+"/"+tt.want.Name)
		})
	}
}
