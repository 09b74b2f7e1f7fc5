package frontend

import "github.com/cfe-fetch/logs"

// ConsolePrompter surfaces the captcha notice on the terminal for runs
// without a control page.
type ConsolePrompter struct {
	Logs *logs.Pair
}

func (p ConsolePrompter) NotifyCaptcha(message string) {
	lg := p.Logs
	if lg == nil {
		lg = logs.ConsolePair()
	}
	lg.Info.Printf(">>> %s", message)
}
