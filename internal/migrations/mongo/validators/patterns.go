package validators

const (
	slugPattern = "^[a-z0-9]+(-[a-z0-9]+)*$"
	datePattern = "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"
	e164Pattern = "^\\+[1-9][0-9]{1,14}$"
)
