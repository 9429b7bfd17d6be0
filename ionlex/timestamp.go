package ionlex

// scanTimestamp scans the remainder of a timestamp literal after its
// 4-digit year has already been consumed by scanNumber, which dispatches
// here as soon as it sees 4 leading digits followed by '-' or 'T'.
func (tkn *Tokenizer) scanTimestamp(start int) (Kind, int, int, error) {
	year := yearFromRange(tkn, start)

	if tkn.cur == 'T' {
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return tkn.finishTimestampTime(start)
	}

	if err := tkn.expectChar('-'); err != nil {
		return ERROR, start, start, err
	}
	month, err := tkn.readDigitPair()
	if err != nil {
		return ERROR, start, start, err
	}
	if month < 1 || month > 12 {
		return ERROR, start, start, tkn.errorf(BadToken, eofRune, "month out of range in timestamp")
	}

	if tkn.cur == 'T' {
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		return tkn.finishTimestampTime(start)
	}

	if err := tkn.expectChar('-'); err != nil {
		return ERROR, start, start, err
	}
	day, err := tkn.readDigitPair()
	if err != nil {
		return ERROR, start, start, err
	}
	if day < 1 || day > daysInMonth(year, month) {
		return ERROR, start, start, tkn.errorf(BadToken, eofRune, "day out of range in timestamp")
	}

	if tkn.cur != 'T' {
		if !isValueTerminator(tkn.cur, tkn.GetByte(tkn.pos)) {
			return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "invalid character in timestamp")
		}
		return TIMESTAMP, start, tkn.endPos(), nil
	}
	if err := tkn.advance(); err != nil { // consume 'T'
		return ERROR, start, start, err
	}
	return tkn.finishTimestampTime(start)
}

// finishTimestampTime handles everything after a 'T' that closes a
// year, year-month, or full date: either nothing more (date-only) or a full
// HH:MM(:SS(.sss)?)?(timezone) clause.
func (tkn *Tokenizer) finishTimestampTime(start int) (Kind, int, int, error) {
	if !isDigit(tkn.cur) {
		if !isValueTerminator(tkn.cur, tkn.GetByte(tkn.pos)) {
			return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "invalid character in timestamp")
		}
		return TIMESTAMP, start, tkn.endPos(), nil
	}

	hour, err := tkn.readDigitPair()
	if err != nil {
		return ERROR, start, start, err
	}
	if hour > 23 {
		return ERROR, start, start, tkn.errorf(BadToken, eofRune, "hour out of range in timestamp")
	}
	if err := tkn.expectChar(':'); err != nil {
		return ERROR, start, start, err
	}
	minute, err := tkn.readDigitPair()
	if err != nil {
		return ERROR, start, start, err
	}
	if minute > 59 {
		return ERROR, start, start, tkn.errorf(BadToken, eofRune, "minute out of range in timestamp")
	}

	if tkn.cur == ':' {
		if err := tkn.advance(); err != nil {
			return ERROR, start, start, err
		}
		second, err := tkn.readDigitPair()
		if err != nil {
			return ERROR, start, start, err
		}
		if second > 59 {
			return ERROR, start, start, tkn.errorf(BadToken, eofRune, "second out of range in timestamp")
		}
		if tkn.cur == '.' {
			if err := tkn.advance(); err != nil {
				return ERROR, start, start, err
			}
			fracDigits := 0
			for isDigit(tkn.cur) {
				fracDigits++
				if err := tkn.advance(); err != nil {
					return ERROR, start, start, err
				}
			}
			if fracDigits == 0 {
				return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "fractional seconds require at least one digit")
			}
		}
	}

	if err := tkn.scanTimezoneOffset(); err != nil {
		return ERROR, start, start, err
	}
	if !isValueTerminator(tkn.cur, tkn.GetByte(tkn.pos)) {
		return ERROR, start, start, tkn.errorf(BadToken, tkn.cur, "invalid character in timestamp")
	}
	return TIMESTAMP, start, tkn.endPos(), nil
}

func (tkn *Tokenizer) scanTimezoneOffset() error {
	switch tkn.cur {
	case 'Z', 'z':
		return tkn.advance()
	case '+', '-':
		if err := tkn.advance(); err != nil {
			return err
		}
		hh, err := tkn.readDigitPair()
		if err != nil {
			return err
		}
		if hh > 23 {
			return tkn.errorf(BadToken, eofRune, "timezone hour out of range")
		}
		if err := tkn.expectChar(':'); err != nil {
			return err
		}
		mm, err := tkn.readDigitPair()
		if err != nil {
			return err
		}
		if mm > 59 {
			return tkn.errorf(BadToken, eofRune, "timezone minute out of range")
		}
		return nil
	default:
		return tkn.errorf(BadToken, tkn.cur, "timestamp requires a timezone offset")
	}
}

// readDigitPair consumes exactly two decimal digits and returns their value.
func (tkn *Tokenizer) readDigitPair() (int, error) {
	d1 := tkn.cur
	if !isDigit(d1) {
		return 0, tkn.errorf(BadToken, d1, "expected two-digit field in timestamp")
	}
	if err := tkn.advance(); err != nil {
		return 0, err
	}
	d2 := tkn.cur
	if !isDigit(d2) {
		return 0, tkn.errorf(BadToken, d2, "expected two-digit field in timestamp")
	}
	if err := tkn.advance(); err != nil {
		return 0, err
	}
	return int(d1-'0')*10 + int(d2-'0'), nil
}

func (tkn *Tokenizer) expectChar(c rune) error {
	if tkn.cur != c {
		return tkn.errorf(BadToken, tkn.cur, "expected %q in timestamp", c)
	}
	return tkn.advance()
}

func yearFromRange(tkn *Tokenizer, start int) int {
	y := 0
	for i := 0; i < 4; i++ {
		y = y*10 + (tkn.GetByte(start+i) - '0')
	}
	return y
}

// IsLeapYear reports whether year is a leap year under the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 31
}
