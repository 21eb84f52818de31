//go:build generate
// +build generate

// regenerate the golden headers in testdata/expected
//go:generate go test ./cmd/rblxapi2cpp -run TestRblxapi2cppE2E -update

package gen
