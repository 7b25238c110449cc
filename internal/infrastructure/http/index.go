package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleIndex serves the demo chat page.
func (s *Server) handleIndex(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Omni Chat</title>
</head>
<body>
    <h2>Omni Chat</h2>
    <form id="chatForm">
        <textarea name="user_input" rows="4" cols="50" placeholder="Type your message here..."></textarea><br>
        <input type="submit" value="Send">
    </form>
    <div id="response"></div>
    <script>
    document.getElementById('chatForm').onsubmit = async function(e) {
        e.preventDefault();
        const user_input = document.querySelector('textarea[name="user_input"]').value;
        const conversation = [
            {
                "role": "system",
                "content": [
                    {"type": "text", "text": "You are a virtual assistant capable of perceiving auditory and visual inputs, as well as generating text."}
                ]
            },
            {
                "role": "user",
                "content": [
                    {"type": "text", "text": user_input}
                ]
            }
        ];
        const response = await fetch('/api/infer', {
            method: 'POST',
            headers: {'Content-Type': 'application/json'},
            body: JSON.stringify({conversation})
        });
        const data = await response.json();
        document.getElementById('response').innerText = data.response || data.error;
    }
    </script>
</body>
</html>`
