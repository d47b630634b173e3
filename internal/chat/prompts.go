package chat

import (
	"os"

	"gomate/internal/message"
)

const aboutAssistant = `You are a helpful terminal companion. You answer
questions, strategize, write code and run it when useful. Prefer GitHub
Flavored Markdown in your answers.`

const aboutTools = `The assistant can use the following tools:
- Terminal
    - Use it by writing a markdown code block starting with ` + "```bash" + `
- JavaScript interpreter
    - Use it by writing a markdown code block starting with ` + "```js" + `
- Save and load files
    - Saving is done by writing "// save: <filename>" on the line after a code block
    - Loading is done by writing "// load: <filename>"

Example, run a hello world script and save it:

    ` + "```js" + `
    print("Hello world!")
    ` + "```" + `
    // save: hello.js

NOTE: the save command must be on the first line after the code block.`

// InitialPrompt seeds a fresh conversation with the system messages that
// describe the assistant and its tools.
func InitialPrompt() []message.Message {
	msgs := []message.Message{
		message.New(message.RoleSystem, aboutAssistant),
		message.New(message.RoleSystem, aboutTools),
	}
	if user := os.Getenv("USER"); user != "" {
		msgs = append(msgs, message.New(message.RoleSystem, "The name of the user is "+user))
	}
	return msgs
}
