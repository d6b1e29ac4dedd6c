package commands

const helpText = `Chronicles of Darkness dice roller

To roll, type '!roll # <mod>', where # is a positive number or 'chance', and <mod> is one of:

* 9again - to re-roll 10s and 9s
* 8again - to re-roll 10s, 9s, and 8s
* no10again - to not re-roll any values

Note that the '<mod>' portion is optional.

Examples:

* !roll 4
* !roll chance
* !roll 10 9again

You can also edit a character reference with the following commands:

* !stats print|show
* !stats edit <name> <value>

Then, you can roll using those references, like:

!character edit strength 3
!roll strength + 1 9again
`

// Help returns the command reference shown to players.
func (h *Handler) Help() string {
	return helpText
}
