package arch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandboxtools/seccomparch/pkg/system"
)

func TestRewriteSyscallX86(t *testing.T) {
	x86, err := ForName(system.ArchName386)
	require.NoError(t, err)

	tt := []struct {
		desc string
		num  int
		want int
	}{
		{desc: "real number passes through", num: 3, want: 3},
		{desc: "socket pseudo folds into socketcall", num: -101, want: x86NRSocketcall},
		{desc: "recvmsg pseudo folds into socketcall", num: -117, want: x86NRSocketcall},
		{desc: "msgget pseudo folds into ipc", num: -213, want: x86NRIpc},
		{desc: "shmctl pseudo folds into ipc", num: -224, want: x86NRIpc},
	}

	for _, test := range tt {
		num := test.num
		err := x86.RewriteSyscall(&num)
		assert.NoError(t, err, test.desc)
		assert.Equal(t, test.want, num, test.desc)
	}

	// a negative number outside the pseudo bands has no rewrite
	num := -50
	assert.ErrorIs(t, x86.RewriteSyscall(&num), ErrArchNotSupported)
}

func TestRewriteSyscallNoRule(t *testing.T) {
	// arches without a rewrite rule must report a domain error, not
	// silently succeed
	for _, name := range []system.ArchName{system.ArchNameAmd64, system.ArchNameArm32, system.ArchNameArm64} {
		ai, err := ForName(name)
		require.NoError(t, err)

		num := 41
		assert.ErrorIs(t, ai.RewriteSyscall(&num), ErrArchNotSupported, string(name))
		assert.Equal(t, 41, num, string(name))
	}
}

func TestRewriteFilterMultiplexed(t *testing.T) {
	x86, err := ForName(system.ArchName386)
	require.NoError(t, err)

	// bind(fd == 7) expressed with the native-translated pseudo number
	num := -102
	chain := FilterChain{
		{Arg: 0, Op: CmpEQ, Datum: 7},
	}

	require.NoError(t, x86.RewriteFilter(true, &num, &chain))
	assert.Equal(t, x86NRSocketcall, num)
	assert.Equal(t, FilterChain{
		{Arg: 0, Op: CmpEQ, Datum: 2}, // SYS_BIND selector
		{Arg: 1, Op: CmpEQ, Datum: 7},
	}, chain)
}

func TestRewriteFilterIpc(t *testing.T) {
	x86, err := ForName(system.ArchName386)
	require.NoError(t, err)

	num := -213 // msgget
	chain := FilterChain{}

	require.NoError(t, x86.RewriteFilter(true, &num, &chain))
	assert.Equal(t, x86NRIpc, num)
	assert.Equal(t, FilterChain{
		{Arg: 0, Op: CmpEQ, Datum: 13},
	}, chain)
}

func TestRewriteFilterStrictLeavesChainIntact(t *testing.T) {
	x86, err := ForName(system.ArchName386)
	require.NoError(t, err)

	num := -101
	chain := FilterChain{
		{Arg: 2, Op: CmpGE, Datum: 1024},
		{Arg: 5, Op: CmpEQ, Datum: 1}, // no slot left after the shift
	}
	snapshot := make(FilterChain, len(chain))
	copy(snapshot, chain)

	err = x86.RewriteFilter(true, &num, &chain)
	assert.ErrorIs(t, err, ErrFilterNotPortable)
	assert.Equal(t, snapshot, chain, "failed strict rewrite must not touch the chain")
	assert.Equal(t, -101, num, "failed strict rewrite must not touch the number")
}

func TestRewriteFilterBestEffortDrops(t *testing.T) {
	x86, err := ForName(system.ArchName386)
	require.NoError(t, err)

	num := -101
	chain := FilterChain{
		{Arg: 2, Op: CmpGE, Datum: 1024},
		{Arg: 5, Op: CmpEQ, Datum: 1},
	}

	require.NoError(t, x86.RewriteFilter(false, &num, &chain))
	assert.Equal(t, x86NRSocketcall, num)
	// the unportable comparison is gone, everything else shifted
	assert.Equal(t, FilterChain{
		{Arg: 0, Op: CmpEQ, Datum: 1}, // SYS_SOCKET selector
		{Arg: 3, Op: CmpGE, Datum: 1024},
	}, chain)
}

func TestRewriteFilterRealNumberPassesThrough(t *testing.T) {
	x86, err := ForName(system.ArchName386)
	require.NoError(t, err)

	num := 3
	chain := FilterChain{
		{Arg: 1, Op: CmpLT, Datum: 4096},
	}
	snapshot := make(FilterChain, len(chain))
	copy(snapshot, chain)

	require.NoError(t, x86.RewriteFilter(true, &num, &chain))
	assert.Equal(t, 3, num)
	assert.Equal(t, snapshot, chain)
}

func TestRewriteFilterNoRule(t *testing.T) {
	arm32, err := ForName(system.ArchNameArm32)
	require.NoError(t, err)

	num := 281
	chain := FilterChain{
		{Arg: 0, Op: CmpEQ, Datum: 2},
	}
	snapshot := make(FilterChain, len(chain))
	copy(snapshot, chain)

	assert.ErrorIs(t, arm32.RewriteFilter(true, &num, &chain), ErrArchNotSupported)
	assert.Equal(t, snapshot, chain)
	assert.Equal(t, 281, num)
}

func TestCmpOpString(t *testing.T) {
	tt := []struct {
		op   CmpOp
		want string
	}{
		{op: CmpNE, want: "!="},
		{op: CmpLT, want: "<"},
		{op: CmpLE, want: "<="},
		{op: CmpEQ, want: "=="},
		{op: CmpGE, want: ">="},
		{op: CmpGT, want: ">"},
		{op: CmpMaskedEQ, want: "&=="},
		{op: CmpInvalid, want: "invalid"},
		{op: CmpOp(99), want: "invalid"},
	}

	for _, test := range tt {
		if got := test.op.String(); got != test.want {
			t.Errorf("CmpOp(%d).String() = %q, want %q", test.op, got, test.want)
		}
	}
}
