package review

import (
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// InitialMessage assembles the content blocks of the conversation's first user
// message: a text block framing the operator's review, followed by one image
// block per attachment in listing order
func InitialMessage(initialReview string, images []ImageAttachment) []anthropic.ContentBlockParamUnion {
	text := fmt.Sprintf("Here is my initial product review:\n\n%s\n\n", initialReview)
	if len(images) > 0 {
		text += "I'm also sharing some images of the product for your analysis:\n"
	}

	content := []anthropic.ContentBlockParamUnion{anthropic.NewTextBlock(text)}
	for _, img := range images {
		content = append(content, anthropic.NewImageBlockBase64(img.MediaType, img.Data))
	}
	return content
}
