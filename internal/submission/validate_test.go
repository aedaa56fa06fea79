package submission

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPetition() PetitionRequest {
	return PetitionRequest{
		Name:    "Jordan Blake",
		Email:   "jordan@example.com",
		Zipcode: "90210",
		Consent: true,
	}
}

func validStory() StoryRequest {
	return StoryRequest{
		Email: "jordan@example.com",
		Story: strings.Repeat("x", 120),
	}
}

func TestValidatePetition_OK(t *testing.T) {
	sig, err := ValidatePetition(validPetition(), RequestMeta{IPAddress: "10.0.0.1", UserAgent: "test-agent"})
	require.NoError(t, err)
	assert.Equal(t, "Jordan Blake", sig.Name)
	assert.Equal(t, "90210", sig.Zipcode)
	assert.True(t, sig.Consent)
	assert.Equal(t, "default", sig.Theme)
	assert.Equal(t, "10.0.0.1", sig.IPAddress)
	assert.Equal(t, "test-agent", sig.UserAgent)
	assert.False(t, sig.CreatedAt.IsZero())
}

func TestValidatePetition_MissingFields(t *testing.T) {
	cases := map[string]func(*PetitionRequest){
		"name":    func(r *PetitionRequest) { r.Name = "" },
		"email":   func(r *PetitionRequest) { r.Email = "" },
		"zipcode": func(r *PetitionRequest) { r.Zipcode = "" },
		"consent": func(r *PetitionRequest) { r.Consent = false },
	}
	for field, mutate := range cases {
		req := validPetition()
		mutate(&req)
		_, err := ValidatePetition(req, RequestMeta{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "field %s", field)
		assert.Equal(t, MissingField, verr.Code)
		assert.Equal(t, field, verr.Field)
	}
}

func TestValidatePetition_EmailShape(t *testing.T) {
	req := validPetition()
	req.Email = "not-an-email"
	_, err := ValidatePetition(req, RequestMeta{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidFormat, verr.Code)
	assert.Equal(t, "email", verr.Field)

	req.Email = "a@b.co"
	_, err = ValidatePetition(req, RequestMeta{})
	assert.NoError(t, err)
}

func TestValidatePetition_Zipcode(t *testing.T) {
	for _, zip := range []string{"1234", "123456", "9021a", "90 10"} {
		req := validPetition()
		req.Zipcode = zip
		_, err := ValidatePetition(req, RequestMeta{})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "zip %q", zip)
		assert.Equal(t, InvalidFormat, verr.Code)
		assert.Equal(t, "zipcode", verr.Field)
	}
}

func TestValidatePetition_FailFastOrder(t *testing.T) {
	// presence violations win over shape violations
	req := validPetition()
	req.Name = ""
	req.Email = "not-an-email"
	_, err := ValidatePetition(req, RequestMeta{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MissingField, verr.Code)
	assert.Equal(t, "name", verr.Field)
}

func TestValidatePetition_ThemeAndMetaDefaults(t *testing.T) {
	req := validPetition()
	req.Theme = "mid-left"
	sig, err := ValidatePetition(req, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, "mid-left", sig.Theme)
	assert.Equal(t, "unknown", sig.IPAddress)
	assert.Equal(t, "unknown", sig.UserAgent)

	req.Theme = "libertarian"
	_, err = ValidatePetition(req, RequestMeta{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, InvalidFormat, verr.Code)
	assert.Equal(t, "theme", verr.Field)
}

func TestValidateStory_LengthBounds(t *testing.T) {
	cases := []struct {
		length int
		code   ErrorCode
	}{
		{49, TooShort},
		{50, ""},
		{2000, ""},
		{2001, TooLong},
	}
	for _, tc := range cases {
		req := validStory()
		req.Story = strings.Repeat("a", tc.length)
		st, err := ValidateStory(req, RequestMeta{})
		if tc.code == "" {
			require.NoError(t, err, "length %d", tc.length)
			assert.Equal(t, StatusPending, st.Status)
			continue
		}
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "length %d", tc.length)
		assert.Equal(t, tc.code, verr.Code)
	}
}

func TestValidateStory_Defaults(t *testing.T) {
	st, err := ValidateStory(validStory(), RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, AnonymousName, st.Name)
	assert.Equal(t, "default", st.Theme)
	assert.False(t, st.AllowPublish)
	assert.False(t, st.AllowContact)
	assert.Equal(t, StatusPending, st.Status)
	assert.Equal(t, "unknown", st.IPAddress)
}

func TestValidateStory_Missing(t *testing.T) {
	req := validStory()
	req.Email = ""
	_, err := ValidateStory(req, RequestMeta{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MissingField, verr.Code)
	assert.Equal(t, "email", verr.Field)

	req = validStory()
	req.Story = ""
	_, err = ValidateStory(req, RequestMeta{})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MissingField, verr.Code)
	assert.Equal(t, "story", verr.Field)
}
