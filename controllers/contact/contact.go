package contactControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/q3rmos/imperial-gems/forms"
	"github.com/q3rmos/imperial-gems/logging"
)

// GET /contact
func ShowContactForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"fields": forms.ContactFields})
	}
}

// POST /contact
// Validates the message and acknowledges it; nothing is persisted.
func SubmitContactForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		var form forms.ContactForm
		if err := c.ShouldBind(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if errs := form.Validate(); len(errs) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		logging.From(c).Info("contact message received", "name", form.Name)
		c.JSON(http.StatusOK, gin.H{"message": "Your message has been successfully sent!"})
	}
}
