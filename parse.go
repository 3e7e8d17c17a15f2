package scheme

// Parse reads one expression from the front of line. Anything after the
// expression is ignored. Errors are returned as *ParseError; pass them to
// Report for display.
func Parse(line string) (v *Value, err error) {
	v, _, err = ParseExpr(line)
	if err != nil {
		return nil, err
	}
	return v, nil
}
