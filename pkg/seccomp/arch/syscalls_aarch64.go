package arch

// Linux syscall table for the aarch64 ABI (the generic syscall numbers),
// ordered by name. The legacy non-at path calls (open, stat, ...) never
// existed here.
var aarch64SyscallTable = []SyscallEntry{
	{"accept", 202},
	{"accept4", 242},
	{"bind", 200},
	{"brk", 214},
	{"capget", 90},
	{"capset", 91},
	{"chdir", 49},
	{"chroot", 51},
	{"clock_getres", 114},
	{"clock_gettime", 113},
	{"clock_nanosleep", 115},
	{"clock_settime", 112},
	{"clone", 220},
	{"close", 57},
	{"connect", 203},
	{"dup", 23},
	{"dup3", 24},
	{"epoll_create1", 20},
	{"epoll_ctl", 21},
	{"epoll_pwait", 22},
	{"eventfd2", 19},
	{"execve", 221},
	{"execveat", 281},
	{"exit", 93},
	{"exit_group", 94},
	{"faccessat", 48},
	{"fchdir", 50},
	{"fchmod", 52},
	{"fchmodat", 53},
	{"fchown", 55},
	{"fchownat", 54},
	{"fcntl", 25},
	{"fdatasync", 83},
	{"flock", 32},
	{"fstat", 80},
	{"fstatfs", 44},
	{"fsync", 82},
	{"ftruncate", 46},
	{"futex", 98},
	{"getcwd", 17},
	{"getdents64", 61},
	{"getegid", 177},
	{"geteuid", 175},
	{"getgid", 176},
	{"getitimer", 102},
	{"getpeername", 205},
	{"getpgid", 155},
	{"getpid", 172},
	{"getppid", 173},
	{"getpriority", 141},
	{"getrandom", 278},
	{"getrlimit", 163},
	{"getrusage", 165},
	{"getsockname", 204},
	{"getsockopt", 209},
	{"gettid", 178},
	{"gettimeofday", 169},
	{"getuid", 174},
	{"ioctl", 29},
	{"kill", 129},
	{"linkat", 37},
	{"listen", 201},
	{"lseek", 62},
	{"madvise", 233},
	{"mkdirat", 34},
	{"mknodat", 33},
	{"mmap", 222},
	{"mount", 40},
	{"mprotect", 226},
	{"mremap", 216},
	{"msgctl", 187},
	{"msgget", 186},
	{"msgrcv", 188},
	{"msgsnd", 189},
	{"msync", 227},
	{"munmap", 215},
	{"nanosleep", 101},
	{"newfstatat", 79},
	{"openat", 56},
	{"personality", 92},
	{"pipe2", 59},
	{"ppoll", 73},
	{"prctl", 167},
	{"pread64", 67},
	{"prlimit64", 261},
	{"pselect6", 72},
	{"ptrace", 117},
	{"pwrite64", 68},
	{"read", 63},
	{"readlinkat", 78},
	{"readv", 65},
	{"reboot", 142},
	{"recvfrom", 207},
	{"recvmmsg", 243},
	{"recvmsg", 212},
	{"renameat", 38},
	{"rt_sigaction", 134},
	{"rt_sigpending", 136},
	{"rt_sigprocmask", 135},
	{"rt_sigqueueinfo", 138},
	{"rt_sigreturn", 139},
	{"rt_sigsuspend", 133},
	{"rt_sigtimedwait", 137},
	{"sched_getaffinity", 123},
	{"sched_setaffinity", 122},
	{"sched_yield", 124},
	{"semctl", 191},
	{"semget", 190},
	{"semop", 193},
	{"semtimedop", 192},
	{"sendfile", 71},
	{"sendmmsg", 269},
	{"sendmsg", 211},
	{"sendto", 206},
	{"setgid", 144},
	{"setgroups", 159},
	{"sethostname", 161},
	{"setitimer", 103},
	{"setpgid", 154},
	{"setpriority", 140},
	{"setresgid", 149},
	{"setresuid", 147},
	{"setrlimit", 164},
	{"setsid", 157},
	{"setsockopt", 208},
	{"setuid", 146},
	{"shmat", 196},
	{"shmctl", 195},
	{"shmdt", 197},
	{"shmget", 194},
	{"shutdown", 210},
	{"sigaltstack", 132},
	{"socket", 198},
	{"socketpair", 199},
	{"splice", 76},
	{"statfs", 43},
	{"statx", 291},
	{"symlinkat", 36},
	{"sync", 81},
	{"sysinfo", 179},
	{"tgkill", 131},
	{"timer_create", 107},
	{"times", 153},
	{"tkill", 130},
	{"truncate", 45},
	{"umask", 166},
	{"uname", 160},
	{"unlinkat", 35},
	{"utimensat", 88},
	{"wait4", 260},
	{"waitid", 95},
	{"write", 64},
	{"writev", 66},
	tableEnd,
}
