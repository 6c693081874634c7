package s3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURL(t *testing.T) {
	assert.Equal(t,
		"https://media.s3.eu-west-1.amazonaws.com/pictures/1.png",
		objectURL("", "eu-west-1", "media", "pictures/1.png", true))

	assert.Equal(t,
		"https://media.s3.us-east-1.amazonaws.com/a.png",
		objectURL("", "", "media", "a.png", true))

	assert.Equal(t,
		"http://localhost:9000/media/a.png",
		objectURL("http://localhost:9000", "us-east-1", "media", "a.png", false))

	assert.Equal(t,
		"https://minio.internal/media/a.png",
		objectURL("minio.internal", "us-east-1", "media", "a.png", true))
}
