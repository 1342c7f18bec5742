package compare

// Formatter renders a comparison set
type Formatter interface {
	Name() string
	Format(compSet *ComparisonSet) (string, error)
}

// FormatterNames lists the accepted --format values
var FormatterNames = []string{"table", "compact", "csv", "json", "json-compact"}

// GetFormatterByName returns nil for unknown names
func GetFormatterByName(name string) Formatter {
	switch name {
	case "", "table", "text":
		return tableFormatter{}
	case "compact":
		return tableFormatter{compact: true}
	case "csv":
		return &CSVFormatter{}
	case "json":
		return &JSONFormatter{Pretty: true}
	case "json-compact":
		return &JSONFormatter{}
	default:
		return nil
	}
}

// tableFormatter adapts TableFormatter to the Formatter interface
type tableFormatter struct {
	compact bool
}

func (t tableFormatter) Name() string {
	if t.compact {
		return "compact"
	}
	return "table"
}

func (t tableFormatter) Format(compSet *ComparisonSet) (string, error) {
	tf := &TableFormatter{}
	if t.compact {
		return tf.FormatCompact(compSet) + "\n", nil
	}
	return tf.Format(compSet), nil
}
