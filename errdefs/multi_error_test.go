package errdefs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiErrorStrings(t *testing.T) {
	type testCase struct {
		name      string
		errs      []error
		prefix    string
		separator string
		expected  string
	}

	cases := []testCase{
		{
			name:     "Empty",
			expected: "",
		},
		{
			name:      "EmptyCustomPrefixCustomSep",
			prefix:    "failed to destroy queue:",
			separator: ", ",
			expected:  "",
		},
		{
			name:     "One",
			errs:     []error{fmt.Errorf("failed to free element 0")},
			expected: "failed to free element 0",
		},
		{
			name: "Two",
			errs: []error{fmt.Errorf("failed to free element 0"), fmt.Errorf("failed to free element 2")},
			expected: "failed to free element 0; " +
				"failed to free element 2",
		},
		{
			name:      "TwoCustomSep",
			errs:      []error{fmt.Errorf("A"), fmt.Errorf("B")},
			separator: " | ",
			expected:  "A | B",
		},
		{
			name:     "TwoCustomPrefix",
			errs:     []error{fmt.Errorf("A"), fmt.Errorf("B")},
			prefix:   "failed to destroy queue: ",
			expected: "failed to destroy queue: A; B",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			me := MultiError{
				Prefix:    tc.prefix,
				Separator: tc.separator,
			}

			for _, err := range tc.errs {
				me.Add(err)
			}

			require.Equal(t, tc.expected, me.Error())
		})
	}
}

func TestMultiErrorAddNil(t *testing.T) {
	var me MultiError

	me.Add(nil)

	require.Nil(t, me.Errors())
	require.NoError(t, me.ErrOrNil())
}

func TestMultiErrorErrOrNil(t *testing.T) {
	var me MultiError

	require.NoError(t, me.ErrOrNil())

	me.Add(fmt.Errorf("A"))

	require.ErrorIs(t, me.ErrOrNil(), &me)
	require.Len(t, me.Errors(), 1)
}
