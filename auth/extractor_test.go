package auth

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
)

func basicHeader(id, secret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(id+":"+secret))
}

func TestExtractCredential(t *testing.T) {
	type args struct {
		header mo.Option[string]
	}
	tests := []struct {
		name    string
		args    args
		want    *Credential
		wantErr error
	}{
		{
			name: "should_extract_basic_credential",
			args: args{header: mo.Some(basicHeader("username1", "password1"))},
			want: &Credential{
				Type:     CredentialTypeBasic,
				Username: "username1",
				Password: "password1",
			},
		},
		{
			name: "should_tolerate_extra_leading_spaces_before_token",
			args: args{header: mo.Some("Basic      " + base64.StdEncoding.EncodeToString([]byte("username1:password1")))},
			want: &Credential{
				Type:     CredentialTypeBasic,
				Username: "username1",
				Password: "password1",
			},
		},
		{
			name: "should_allow_empty_secret",
			args: args{header: mo.Some(basicHeader("username1", ""))},
			want: &Credential{
				Type:     CredentialTypeBasic,
				Username: "username1",
				Password: "",
			},
		},
		{
			name:    "should_error_for_missing_header",
			args:    args{header: mo.None[string]()},
			wantErr: ErrCredentialNotFound,
		},
		{
			name:    "should_error_for_bearer_scheme",
			args:    args{header: mo.Some("Bearer xyz")},
			wantErr: ErrSchemeNotRecognized,
		},
		{
			name:    "should_error_for_lowercase_scheme",
			args:    args{header: mo.Some("basic " + base64.StdEncoding.EncodeToString([]byte("username1:password1")))},
			wantErr: ErrSchemeNotRecognized,
		},
		{
			name:    "should_error_for_invalid_base64",
			args:    args{header: mo.Some("Basic not-base64!!")},
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "should_error_for_missing_separator",
			args:    args{header: mo.Some("Basic " + base64.StdEncoding.EncodeToString([]byte("username1password1")))},
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "should_error_for_empty_token",
			args:    args{header: mo.Some("Basic ")},
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "should_error_for_extra_separators",
			args:    args{header: mo.Some("Basic " + base64.StdEncoding.EncodeToString([]byte("username1:pass:word")))},
			wantErr: ErrMalformedCredential,
		},
		{
			name:    "should_error_for_control_characters_in_username",
			args:    args{header: mo.Some("Basic " + base64.StdEncoding.EncodeToString([]byte("user\x01name:password1")))},
			wantErr: ErrInvalidCredentialChars,
		},
		{
			name:    "should_error_for_delete_character_in_secret",
			args:    args{header: mo.Some("Basic " + base64.StdEncoding.EncodeToString([]byte("username1:pass\x7fword")))},
			wantErr: ErrInvalidCredentialChars,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractCredential(tt.args.header)

			if tt.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCredential_WrongSchemeIsNeverMalformed(t *testing.T) {
	_, err := ExtractCredential(mo.Some("Bearer xyz"))
	require.True(t, errors.Is(err, ErrSchemeNotRecognized))
	require.False(t, errors.Is(err, ErrMalformedCredential))
}

func TestExtractCredential_RoundTrip(t *testing.T) {
	pairs := []struct{ id, secret string }{
		{"username1", "password1"},
		{"u", "s"},
		{"user with spaces", "secret with spaces"},
		{"user@example.com", "p4ssw0rd=="},
		{"", "secret-for-empty-id"},
	}

	for _, p := range pairs {
		got, err := ExtractCredential(mo.Some(basicHeader(p.id, p.secret)))
		require.NoError(t, err)
		require.Equal(t, p.id, got.Username)
		require.Equal(t, p.secret, got.Password)
	}
}
