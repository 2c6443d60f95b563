package arch

// Linux syscall table for the 32-bit x86 ABI, ordered by name. The
// negative entries are the socketcall and ipc pseudo-syscalls resolved by
// the x86 rewrite rules; everything else is the kernel's syscall_32 number.
var x86SyscallTable = []SyscallEntry{
	{"accept", -105},
	{"accept4", -118},
	{"access", 33},
	{"alarm", 27},
	{"bind", -102},
	{"brk", 45},
	{"capget", 184},
	{"capset", 185},
	{"chdir", 12},
	{"chmod", 15},
	{"chown", 182},
	{"chroot", 61},
	{"clock_getres", 266},
	{"clock_gettime", 265},
	{"clock_nanosleep", 267},
	{"clock_settime", 264},
	{"clone", 120},
	{"close", 6},
	{"connect", -103},
	{"creat", 8},
	{"dup", 41},
	{"dup2", 63},
	{"dup3", 330},
	{"epoll_create", 254},
	{"epoll_create1", 329},
	{"epoll_ctl", 255},
	{"epoll_pwait", 319},
	{"epoll_wait", 256},
	{"eventfd2", 328},
	{"execve", 11},
	{"execveat", 358},
	{"exit", 1},
	{"exit_group", 252},
	{"faccessat", 307},
	{"fchdir", 133},
	{"fchmod", 94},
	{"fchmodat", 306},
	{"fchown", 95},
	{"fchownat", 298},
	{"fcntl", 55},
	{"fcntl64", 221},
	{"fdatasync", 148},
	{"flock", 143},
	{"fork", 2},
	{"fstat", 108},
	{"fstat64", 197},
	{"fstatat64", 300},
	{"fstatfs", 100},
	{"fsync", 118},
	{"ftruncate", 93},
	{"futex", 240},
	{"getcwd", 183},
	{"getdents", 141},
	{"getdents64", 220},
	{"getegid", 50},
	{"geteuid", 49},
	{"getgid", 47},
	{"getitimer", 105},
	{"getpeername", -107},
	{"getpgid", 132},
	{"getpgrp", 65},
	{"getpid", 20},
	{"getppid", 64},
	{"getpriority", 96},
	{"getrandom", 355},
	{"getrlimit", 76},
	{"getrusage", 77},
	{"getsockname", -106},
	{"getsockopt", -115},
	{"gettid", 224},
	{"gettimeofday", 78},
	{"getuid", 24},
	{"ioctl", 54},
	{"ipc", 117},
	{"kill", 37},
	{"lchown", 16},
	{"link", 9},
	{"linkat", 303},
	{"listen", -104},
	{"lseek", 19},
	{"lstat", 107},
	{"madvise", 219},
	{"mkdir", 39},
	{"mkdirat", 296},
	{"mknod", 14},
	{"mknodat", 297},
	{"mmap", 90},
	{"mmap2", 192},
	{"mount", 21},
	{"mprotect", 125},
	{"mremap", 163},
	{"msgctl", -214},
	{"msgget", -213},
	{"msgrcv", -212},
	{"msgsnd", -211},
	{"msync", 144},
	{"munmap", 91},
	{"nanosleep", 162},
	{"open", 5},
	{"openat", 295},
	{"pause", 29},
	{"personality", 136},
	{"pipe", 42},
	{"pipe2", 331},
	{"poll", 168},
	{"ppoll", 309},
	{"prctl", 172},
	{"pread64", 180},
	{"prlimit64", 340},
	{"pselect6", 308},
	{"ptrace", 26},
	{"pwrite64", 181},
	{"read", 3},
	{"readlink", 85},
	{"readlinkat", 305},
	{"readv", 145},
	{"reboot", 88},
	{"recv", -110},
	{"recvfrom", -112},
	{"recvmmsg", -119},
	{"recvmsg", -117},
	{"rename", 38},
	{"renameat", 302},
	{"rmdir", 40},
	{"rt_sigaction", 174},
	{"rt_sigpending", 176},
	{"rt_sigprocmask", 175},
	{"rt_sigqueueinfo", 178},
	{"rt_sigreturn", 173},
	{"rt_sigsuspend", 179},
	{"rt_sigtimedwait", 177},
	{"sched_getaffinity", 242},
	{"sched_setaffinity", 241},
	{"sched_yield", 158},
	{"select", 82},
	{"semctl", -203},
	{"semget", -202},
	{"semop", -201},
	{"semtimedop", -204},
	{"send", -109},
	{"sendfile", 187},
	{"sendmmsg", -120},
	{"sendmsg", -116},
	{"sendto", -111},
	{"setgid", 46},
	{"setgroups", 81},
	{"sethostname", 74},
	{"setitimer", 104},
	{"setpgid", 57},
	{"setpriority", 97},
	{"setresgid", 170},
	{"setresuid", 164},
	{"setrlimit", 75},
	{"setsid", 66},
	{"setsockopt", -114},
	{"setuid", 23},
	{"shmat", -221},
	{"shmctl", -224},
	{"shmdt", -222},
	{"shmget", -223},
	{"shutdown", -113},
	{"sigaltstack", 186},
	{"socket", -101},
	{"socketcall", 102},
	{"socketpair", -108},
	{"splice", 313},
	{"stat", 106},
	{"stat64", 195},
	{"statfs", 99},
	{"statx", 383},
	{"symlink", 83},
	{"symlinkat", 304},
	{"sync", 36},
	{"sysinfo", 116},
	{"tgkill", 270},
	{"time", 13},
	{"timer_create", 259},
	{"times", 43},
	{"tkill", 238},
	{"truncate", 92},
	{"umask", 60},
	{"uname", 122},
	{"unlink", 10},
	{"unlinkat", 301},
	{"utimensat", 320},
	{"vfork", 190},
	{"wait4", 114},
	{"waitid", 284},
	{"waitpid", 7},
	{"write", 4},
	{"writev", 146},
	tableEnd,
}
