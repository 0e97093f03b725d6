package leads

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "[온라인] Kim(Choco) / demo", Title(Submission{
		Type: RequestTypeOnline, Name: "Kim", PetName: "Choco", Site: "demo",
	}))
	assert.Equal(t, "[전화] Lee(펫이름 미입력) / unknown", Title(Submission{
		Type: RequestTypePhone, Name: "Lee", Site: "unknown",
	}))
}

func TestLabels_ExactlyTypeAndSite(t *testing.T) {
	labels := Labels(Submission{Type: RequestTypeOnline, Site: "demo"})
	assert.Equal(t, []string{"type:online", "site:demo"}, labels)
}

func TestEncodeBody_SingleJSONFence(t *testing.T) {
	body, err := EncodeBody(Submission{
		Type:        RequestTypeOnline,
		Site:        "demo",
		Name:        "<Kim & Co>",
		RequestedAt: "2024-01-01T00:00:00.000Z",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(body, "```json\n{\n  \"type\": \"online\",\n  \"site\": \"demo\",\n"), body)
	assert.True(t, strings.HasSuffix(body, "\n}\n```"), body)
	assert.Equal(t, 2, strings.Count(body, "```"))
	assert.Contains(t, body, `"name": "<Kim & Co>"`)
}

func TestEncode_DraftRoundTripsThroughPayload(t *testing.T) {
	s, err := Normalize(RawSubmission{
		"type":     "phone",
		"site":     "펫보험",
		"name":     "홍길동",
		"phone":    "010-98765432",
		"petName":  "초코",
		"rrnFront": "900101",
		"rrnBack":  "1234567",
	}, fixedNow)
	require.NoError(t, err)

	d, err := Encode(s)
	require.NoError(t, err)

	assert.Equal(t, "[전화] 홍길동(초코) / 펫보험", d.Title)
	assert.Equal(t, []string{"type:phone", "site:펫보험"}, d.Labels)

	payload := ExtractPayload(d.Body)
	assert.Equal(t, "홍길동", payload["name"])
	assert.Equal(t, "010-98765432", payload["phone"])
	assert.Equal(t, "2024-01-01T00:00:00.000Z", payload["requestedAt"])
}
