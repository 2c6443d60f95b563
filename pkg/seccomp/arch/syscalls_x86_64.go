package arch

// Linux syscall table for the x86_64 ABI, ordered by name.
var x8664SyscallTable = []SyscallEntry{
	{"accept", 43},
	{"accept4", 288},
	{"access", 21},
	{"alarm", 37},
	{"bind", 49},
	{"brk", 12},
	{"capget", 125},
	{"capset", 126},
	{"chdir", 80},
	{"chmod", 90},
	{"chown", 92},
	{"chroot", 161},
	{"clock_getres", 229},
	{"clock_gettime", 228},
	{"clock_nanosleep", 230},
	{"clock_settime", 227},
	{"clone", 56},
	{"close", 3},
	{"connect", 42},
	{"creat", 85},
	{"dup", 32},
	{"dup2", 33},
	{"dup3", 292},
	{"epoll_create", 213},
	{"epoll_create1", 291},
	{"epoll_ctl", 233},
	{"epoll_pwait", 281},
	{"epoll_wait", 232},
	{"eventfd2", 290},
	{"execve", 59},
	{"execveat", 322},
	{"exit", 60},
	{"exit_group", 231},
	{"faccessat", 269},
	{"fchdir", 81},
	{"fchmod", 91},
	{"fchmodat", 268},
	{"fchown", 93},
	{"fchownat", 260},
	{"fcntl", 72},
	{"fdatasync", 75},
	{"flock", 73},
	{"fork", 57},
	{"fstat", 5},
	{"fstatfs", 138},
	{"fsync", 74},
	{"ftruncate", 77},
	{"futex", 202},
	{"getcwd", 79},
	{"getdents", 78},
	{"getdents64", 217},
	{"getegid", 108},
	{"geteuid", 107},
	{"getgid", 104},
	{"getitimer", 36},
	{"getpeername", 52},
	{"getpgid", 121},
	{"getpgrp", 111},
	{"getpid", 39},
	{"getppid", 110},
	{"getpriority", 140},
	{"getrandom", 318},
	{"getrlimit", 97},
	{"getrusage", 98},
	{"getsockname", 51},
	{"getsockopt", 55},
	{"gettid", 186},
	{"gettimeofday", 96},
	{"getuid", 102},
	{"ioctl", 16},
	{"kill", 62},
	{"lchown", 94},
	{"link", 86},
	{"linkat", 265},
	{"listen", 50},
	{"lseek", 8},
	{"lstat", 6},
	{"madvise", 28},
	{"mkdir", 83},
	{"mkdirat", 258},
	{"mknod", 133},
	{"mknodat", 259},
	{"mmap", 9},
	{"mount", 165},
	{"mprotect", 10},
	{"mremap", 25},
	{"msgctl", 71},
	{"msgget", 68},
	{"msgrcv", 70},
	{"msgsnd", 69},
	{"msync", 26},
	{"munmap", 11},
	{"nanosleep", 35},
	{"newfstatat", 262},
	{"open", 2},
	{"openat", 257},
	{"pause", 34},
	{"personality", 135},
	{"pipe", 22},
	{"pipe2", 293},
	{"poll", 7},
	{"ppoll", 271},
	{"prctl", 157},
	{"pread64", 17},
	{"prlimit64", 302},
	{"pselect6", 270},
	{"ptrace", 101},
	{"pwrite64", 18},
	{"read", 0},
	{"readlink", 89},
	{"readlinkat", 267},
	{"readv", 19},
	{"reboot", 169},
	{"recvfrom", 45},
	{"recvmmsg", 299},
	{"recvmsg", 47},
	{"rename", 82},
	{"renameat", 264},
	{"rmdir", 84},
	{"rt_sigaction", 13},
	{"rt_sigpending", 127},
	{"rt_sigprocmask", 14},
	{"rt_sigqueueinfo", 129},
	{"rt_sigreturn", 15},
	{"rt_sigsuspend", 130},
	{"rt_sigtimedwait", 128},
	{"sched_getaffinity", 204},
	{"sched_setaffinity", 203},
	{"sched_yield", 24},
	{"select", 23},
	{"semctl", 66},
	{"semget", 64},
	{"semop", 65},
	{"semtimedop", 220},
	{"sendfile", 40},
	{"sendmmsg", 307},
	{"sendmsg", 46},
	{"sendto", 44},
	{"setgid", 106},
	{"setgroups", 116},
	{"sethostname", 170},
	{"setitimer", 38},
	{"setpgid", 109},
	{"setpriority", 141},
	{"setresgid", 119},
	{"setresuid", 117},
	{"setrlimit", 160},
	{"setsid", 112},
	{"setsockopt", 54},
	{"setuid", 105},
	{"shmat", 30},
	{"shmctl", 31},
	{"shmdt", 67},
	{"shmget", 29},
	{"shutdown", 48},
	{"sigaltstack", 131},
	{"socket", 41},
	{"socketpair", 53},
	{"splice", 275},
	{"stat", 4},
	{"statfs", 137},
	{"statx", 332},
	{"symlink", 88},
	{"symlinkat", 266},
	{"sync", 162},
	{"sysinfo", 99},
	{"tgkill", 234},
	{"time", 201},
	{"timer_create", 222},
	{"times", 100},
	{"tkill", 200},
	{"truncate", 76},
	{"umask", 95},
	{"uname", 63},
	{"unlink", 87},
	{"unlinkat", 263},
	{"utimensat", 280},
	{"vfork", 58},
	{"wait4", 61},
	{"waitid", 247},
	{"write", 1},
	{"writev", 20},
	tableEnd,
}
